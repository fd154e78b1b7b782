package main

import (
	ghostwriter "github.com/Molefas/ghost-writer"
)

// SourceCmd groups the source subcommands.
type SourceCmd struct {
	Add    SourceAddCmd    `cmd:"" help:"Add a blog, article or newsletter source"`
	List   SourceListCmd   `cmd:"" help:"List sources"`
	Remove SourceRemoveCmd `cmd:"" help:"Remove a source; its inspirations are kept"`
	Update SourceUpdateCmd `cmd:"" help:"Update a source"`
}

// SourceAddCmd is the "source add" subcommand.
type SourceAddCmd struct {
	Kind   string `arg:"" enum:"blog,article,newsletter" help:"Source type: blog, article or newsletter"`
	Name   string `arg:"" help:"Display name"`
	Target string `arg:"" help:"URL for blogs and articles, sender address for newsletters"`
}

// Run executes the source add command.
func (c *SourceAddCmd) Run(deps *Dependencies) error {
	src := &ghostwriter.Source{Kind: ghostwriter.SourceKind(c.Kind), Name: c.Name}
	if src.Kind == ghostwriter.SourceNewsletter {
		src.Email = c.Target
	} else {
		src.URL = c.Target
	}

	if err := deps.Sources.CreateSource(deps.Ctx, src); err != nil {
		return err
	}
	return writeJSON(deps.Stdout, src)
}

// SourceListCmd is the "source list" subcommand.
type SourceListCmd struct {
	Kind string `name:"type" help:"Only list sources of this type (blog, article or newsletter)"`
}

// Run executes the source list command.
func (c *SourceListCmd) Run(deps *Dependencies) error {
	var filter ghostwriter.SourceFilter
	if c.Kind != "" {
		kind := ghostwriter.SourceKind(c.Kind)
		if !kind.Valid() {
			return ghostwriter.Errorf(ghostwriter.EINVALID, "invalid source type %q", c.Kind)
		}
		filter.Kind = &kind
	}

	sources, err := deps.Sources.FindSources(deps.Ctx, filter)
	if err != nil {
		return err
	}
	if sources == nil {
		sources = []*ghostwriter.Source{}
	}
	return writeJSON(deps.Stdout, map[string]any{"sources": sources, "count": len(sources)})
}

// SourceRemoveCmd is the "source remove" subcommand.
type SourceRemoveCmd struct {
	ID string `arg:"" help:"Source ID"`
}

// Run executes the source remove command.
func (c *SourceRemoveCmd) Run(deps *Dependencies) error {
	if err := deps.Sources.DeleteSource(deps.Ctx, c.ID); err != nil {
		return err
	}
	return writeJSON(deps.Stdout, map[string]any{"removed": c.ID})
}

// SourceUpdateCmd is the "source update" subcommand.
type SourceUpdateCmd struct {
	ID    string  `arg:"" help:"Source ID"`
	Name  *string `help:"New display name"`
	URL   *string `name:"url" help:"New URL"`
	Email *string `help:"New sender address"`
}

// Run executes the source update command.
func (c *SourceUpdateCmd) Run(deps *Dependencies) error {
	if c.Name == nil && c.URL == nil && c.Email == nil {
		return ghostwriter.Errorf(ghostwriter.EINVALID, "nothing to update; pass --name, --url or --email")
	}

	src, err := deps.Sources.UpdateSource(deps.Ctx, c.ID, ghostwriter.SourceUpdate{
		Name:  c.Name,
		URL:   c.URL,
		Email: c.Email,
	})
	if err != nil {
		return err
	}
	return writeJSON(deps.Stdout, src)
}
