package main

import (
	ghostwriter "github.com/Molefas/ghost-writer"
)

// ContentCmd groups the content subcommands.
type ContentCmd struct {
	List ContentListCmd `cmd:"" help:"List content drafts"`
}

// ContentListCmd is the "content list" subcommand.
type ContentListCmd struct {
	Kind   string `name:"type" help:"Only drafts of this type (article, linkedin or x_post)"`
	Status string `help:"Only drafts with this status (draft or done)"`
}

// Run executes the content list command.
func (c *ContentListCmd) Run(deps *Dependencies) error {
	var filter ghostwriter.ContentFilter
	if c.Kind != "" {
		kind := ghostwriter.ContentKind(c.Kind)
		filter.Kind = &kind
	}
	if c.Status != "" {
		status := ghostwriter.ContentStatus(c.Status)
		filter.Status = &status
	}

	contents, err := deps.Contents.FindContents(deps.Ctx, filter)
	if err != nil {
		return err
	}
	if contents == nil {
		contents = []*ghostwriter.Content{}
	}
	return writeJSON(deps.Stdout, map[string]any{"content": contents, "count": len(contents)})
}
