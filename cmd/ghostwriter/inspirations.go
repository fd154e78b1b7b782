package main

import (
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

// InspirationsCmd is the "inspirations" subcommand.
type InspirationsCmd struct {
	Query    string   `short:"q" help:"Case-insensitive text to find in title or description"`
	Tags     []string `name:"tag" help:"Match inspirations carrying any of these tags (repeatable)"`
	MinScore int      `name:"min-score" help:"Minimum relevance score (1-10)"`
	Source   string   `help:"Only inspirations from this source ID"`
	Since    string   `help:"Only inspirations discovered on or after this date (YYYY-MM-DD or RFC 3339)"`
	Limit    int      `short:"n" help:"Maximum number of results"`
}

// Run executes the inspirations command.
func (c *InspirationsCmd) Run(deps *Dependencies) error {
	filter := ghostwriter.InspirationFilter{
		Query:    c.Query,
		Tags:     c.Tags,
		MinScore: c.MinScore,
		Limit:    c.Limit,
	}
	if c.Source != "" {
		filter.SourceID = &c.Source
	}
	if c.Since != "" {
		since, err := parseSince(c.Since)
		if err != nil {
			return err
		}
		filter.Since = &since
	}

	insps, err := deps.Inspirations.FindInspirations(deps.Ctx, filter)
	if err != nil {
		return err
	}
	if insps == nil {
		insps = []*ghostwriter.Inspiration{}
	}
	return writeJSON(deps.Stdout, map[string]any{"inspirations": insps, "count": len(insps)})
}

func parseSince(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ghostwriter.Errorf(ghostwriter.EINVALID, "invalid --since %q; use YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

// TagCmd is the "tag" subcommand.
type TagCmd struct {
	ID   string   `arg:"" help:"Inspiration ID"`
	Tags []string `arg:"" optional:"" help:"Tags to set; none clears all tags"`
}

// Run executes the tag command.
func (c *TagCmd) Run(deps *Dependencies) error {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	insp, err := deps.Inspirations.UpdateInspiration(deps.Ctx, c.ID, ghostwriter.InspirationUpdate{Tags: tags})
	if err != nil {
		return err
	}
	return writeJSON(deps.Stdout, insp)
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	IDs []string `arg:"" name:"id" help:"Inspiration IDs"`
}

// Run executes the read command. A single ID fails on error; several IDs
// are read together with placeholders for pages that cannot be fetched.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if len(c.IDs) == 1 {
		content, err := deps.Reader.Read(deps.Ctx, c.IDs[0])
		if err != nil {
			return err
		}
		return writeJSON(deps.Stdout, content)
	}

	contents := deps.Reader.ReadAll(deps.Ctx, c.IDs)
	return writeJSON(deps.Stdout, map[string]any{"contents": contents, "count": len(contents)})
}
