package ports

// LineSource defines the interface for reading newline-separated input lists.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type LineSource interface {
	// ReadLines returns every readable, non-blank line of the file with its
	// line terminator removed.
	ReadLines(path string) ([]string, error)
}
