package main

import (
	"github.com/Molefas/ghost-writer/mail"
)

// GmailCmd groups the gmail subcommands.
type GmailCmd struct {
	Auth   GmailAuthCmd   `cmd:"" help:"Authorize read-only mailbox access"`
	Search GmailSearchCmd `cmd:"" help:"List recent emails from a sender"`
}

// GmailAuthCmd is the "gmail auth" subcommand. Without a code it prints the
// consent URL; with the code from the redirect it stores the tokens.
type GmailAuthCmd struct {
	Code string `arg:"" optional:"" help:"Authorization code from the consent redirect"`
}

// Run executes the gmail auth command.
func (c *GmailAuthCmd) Run(deps *Dependencies) error {
	if c.Code == "" {
		u, err := deps.Gmail.AuthURL()
		if err != nil {
			return err
		}
		return writeJSON(deps.Stdout, map[string]any{
			"authUrl":      u,
			"instructions": "Open the URL, grant access, then run 'ghostwriter gmail auth <code>' with the code parameter from the redirect URL.",
		})
	}

	if err := deps.Gmail.Exchange(deps.Ctx, c.Code); err != nil {
		return err
	}
	return writeJSON(deps.Stdout, map[string]any{"authenticated": true})
}

// GmailSearchCmd is the "gmail search" subcommand.
type GmailSearchCmd struct {
	Sender string `arg:"" help:"Sender address"`
	Max    int    `default:"10" help:"Maximum results (capped at 50)"`
}

// Run executes the gmail search command.
func (c *GmailSearchCmd) Run(deps *Dependencies) error {
	client, err := deps.Mail.Client(deps.Ctx)
	if err != nil {
		return err
	}
	emails, err := mail.Search(deps.Ctx, client, c.Sender, c.Max)
	if err != nil {
		return err
	}
	return writeJSON(deps.Stdout, map[string]any{"sender": c.Sender, "emails": emails, "count": len(emails)})
}
