package papertree

import "context"

// Fetcher retrieves auxiliary pages referenced by an article, such as tables
// that a publisher hosts on a separate page.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any held resources.
	Close() error
}
