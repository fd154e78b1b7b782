package ghostwriter

// ExtractResult holds metadata and readable text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Description is a short excerpt or meta description. May be empty.
	Description string

	// Text is the main readable content as plain text.
	Text string
}

// Extractor extracts page metadata and main content from HTML, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL.
	Extract(html string, pageURL string) (*ExtractResult, error)
}
