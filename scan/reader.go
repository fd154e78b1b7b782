package scan

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
	"golang.org/x/sync/errgroup"
)

// readConcurrency bounds concurrent body fetches in ReadAll.
const readConcurrency = 3

// Reader fetches the body text of stored inspirations on demand. Bodies
// are never persisted.
type Reader struct {
	Inspirations ghostwriter.InspirationService
	Bodies       ghostwriter.BodyExtractor
}

// Read returns the body text of an inspiration.
// Returns ENOTFOUND if the inspiration does not exist and EFETCH if its
// page cannot be retrieved.
func (r *Reader) Read(ctx context.Context, id string) (*ghostwriter.InspirationContent, error) {
	insp, err := r.Inspirations.FindInspirationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	body, err := r.Bodies.FetchBody(ctx, insp.URL)
	if err != nil {
		return nil, err
	}
	return &ghostwriter.InspirationContent{
		InspirationID: insp.ID,
		Title:         insp.Title,
		URL:           insp.URL,
		Content:       body,
	}, nil
}

// ReadAll reads many inspirations in order. A body that cannot be read is
// replaced by a placeholder and its error recorded, so one bad article does
// not block the rest.
func (r *Reader) ReadAll(ctx context.Context, ids []string) []*ghostwriter.InspirationContent {
	out := make([]*ghostwriter.InspirationContent, len(ids))

	var g errgroup.Group
	g.SetLimit(readConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			c, err := r.Read(ctx, id)
			if err != nil {
				c = &ghostwriter.InspirationContent{
					InspirationID: id,
					Content:       "[content unavailable: " + errorText(err) + "]",
					Error:         errorText(err),
				}
				if insp, ferr := r.Inspirations.FindInspirationByID(ctx, id); ferr == nil {
					c.Title, c.URL = insp.Title, insp.URL
				}
			}
			out[i] = c
			return nil
		})
	}
	_ = g.Wait()
	return out
}
