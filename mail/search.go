package mail

import (
	"context"
	"strings"

	ghostwriter "github.com/Molefas/ghost-writer"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSearchResults is the number of messages returned when no limit is given.
	DefaultSearchResults = 10

	metadataConcurrency = 5
)

// SenderQuery builds the mailbox query matching messages from sender.
// Double quotes are removed from sender so it cannot escape the phrase.
func SenderQuery(sender string) string {
	return `from:"` + strings.ReplaceAll(sender, `"`, "") + `"`
}

// Search returns the metadata of up to max messages from sender, in the
// order the mailbox returned them. A non-positive max uses
// DefaultSearchResults; max is capped at ghostwriter.MaxSearchResults.
// Metadata is fetched in bounded concurrent batches.
func Search(ctx context.Context, client ghostwriter.MailClient, sender string, max int) ([]*ghostwriter.Email, error) {
	if max <= 0 {
		max = DefaultSearchResults
	}
	max = min(max, ghostwriter.MaxSearchResults)

	ids, err := client.SearchMessages(ctx, SenderQuery(sender), max)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*ghostwriter.Email{}, nil
	}

	emails := make([]*ghostwriter.Email, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(metadataConcurrency)
	for i, id := range ids {
		if id == "" {
			continue
		}
		g.Go(func() error {
			email, err := client.GetMessageMetadata(gctx, id)
			if err != nil {
				return err
			}
			if email.From == "" {
				email.From = sender
			}
			emails[i] = email
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := emails[:0]
	for _, e := range emails {
		if e != nil {
			results = append(results, e)
		}
	}
	return results, nil
}
