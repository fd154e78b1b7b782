package ghostwriter

import "context"

// Fetcher retrieves raw page bodies (HTML, RSS, Atom) from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Returns EFETCH on network failure, timeout or a non-2xx status.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
