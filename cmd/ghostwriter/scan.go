package main

import (
	"errors"

	"github.com/Molefas/ghost-writer/scan"
)

// ScanCmd groups the scan subcommands.
type ScanCmd struct {
	Blog        ScanBlogCmd        `cmd:"" help:"Discover new articles on a blog source"`
	Newsletters ScanNewslettersCmd `cmd:"" help:"Extract article links from newsletter emails"`
	Article     ScanArticleCmd     `cmd:"" help:"Record a single article source"`
}

// ScanBlogCmd is the "scan blog" subcommand.
type ScanBlogCmd struct {
	ID string `arg:"" help:"Blog source ID"`
}

// Run executes the scan blog command.
func (c *ScanBlogCmd) Run(deps *Dependencies) error {
	result := deps.Blogs.Scan(deps.Ctx, c.ID)
	return report(deps, result, result.Error)
}

// ScanNewslettersCmd is the "scan newsletters" subcommand.
type ScanNewslettersCmd struct {
	Sources   []string `name:"source" help:"Only scan these newsletter source IDs (repeatable)"`
	MaxEmails int      `name:"max-emails" default:"5" help:"Maximum emails per source"`
}

// Run executes the scan newsletters command.
func (c *ScanNewslettersCmd) Run(deps *Dependencies) error {
	result := deps.Newsletters.Scan(deps.Ctx, scan.NewsletterRequest{
		SourceIDs: c.Sources,
		MaxEmails: c.MaxEmails,
	})
	return report(deps, result, result.Error)
}

// ScanArticleCmd is the "scan article" subcommand.
type ScanArticleCmd struct {
	ID string `arg:"" help:"Article source ID"`
}

// Run executes the scan article command.
func (c *ScanArticleCmd) Run(deps *Dependencies) error {
	result := deps.Articles.Scan(deps.Ctx, c.ID)
	return report(deps, result, result.Error)
}

// report prints a scan result and turns its error description, if any,
// into the command error.
func report(deps *Dependencies, result any, errText string) error {
	if err := writeJSON(deps.Stdout, result); err != nil {
		return err
	}
	if errText != "" {
		return errors.New(errText)
	}
	return nil
}
