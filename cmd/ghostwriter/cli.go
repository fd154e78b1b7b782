package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Sources      ghostwriter.SourceService
	Inspirations ghostwriter.InspirationService
	Contents     ghostwriter.ContentService

	Blogs       *scan.BlogScanner
	Newsletters *scan.NewsletterScanner
	Articles    *scan.ArticleScanner
	Reader      *scan.Reader

	Gmail GmailAuthorizer
	Mail  ghostwriter.MailAuthenticator

	Interests Profile
	Voice     Profile
}

// GmailAuthorizer runs the interactive mailbox consent flow.
type GmailAuthorizer interface {
	AuthURL() (string, error)
	Exchange(ctx context.Context, code string) error
}

// Profile is a readable and writable profile document.
type Profile interface {
	ghostwriter.ProfileLoader
	Save(ctx context.Context, text string) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB                 string        `name:"db" env:"GHOSTWRITER_DB" help:"SQLite database path (default ~/.ghostwriter/ghostwriter.db)"`
	InterestsFile      string        `name:"interests-file" env:"GHOSTWRITER_INTERESTS" help:"Interest profile path (default ~/.ghostwriter/interests.md)"`
	VoiceFile          string        `name:"voice-file" env:"GHOSTWRITER_VOICE" help:"Voice profile path (default ~/.ghostwriter/voice.md)"`
	GoogleClientID     string        `name:"google-client-id" env:"GOOGLE_CLIENT_ID" help:"OAuth2 client ID for Gmail access"`
	GoogleClientSecret string        `name:"google-client-secret" env:"GOOGLE_CLIENT_SECRET" help:"OAuth2 client secret for Gmail access"`
	Timeout            time.Duration `default:"15s" help:"HTTP fetch timeout"`
	Rate               float64       `default:"1" help:"Requests per second per host during blog discovery (0 disables)"`
	LogLevel           string        `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level for diagnostics on stderr"`

	Source       SourceCmd       `cmd:"" help:"Manage discovery sources"`
	Scan         ScanCmd         `cmd:"" help:"Scan sources for new inspirations"`
	Inspirations InspirationsCmd `cmd:"" help:"Search stored inspirations"`
	Tag          TagCmd          `cmd:"" help:"Replace the tags of an inspiration"`
	Read         ReadCmd         `cmd:"" help:"Fetch the full text of inspirations"`
	Gmail        GmailCmd        `cmd:"" help:"Connect and query the Gmail mailbox"`
	Interests    InterestsCmd    `cmd:"" help:"Show or replace the interest profile"`
	Voice        VoiceCmd        `cmd:"" help:"Show or replace the voice profile"`
	Content      ContentCmd      `cmd:"" help:"Manage content drafts"`
}

// writeJSON prints v as an indented JSON document.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
