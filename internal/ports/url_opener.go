package ports

// URLOpener opens web pages in the user's browser
type URLOpener interface {
	// Open opens url in a browser
	Open(url string) error
}
