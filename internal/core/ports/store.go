package ports

// MatchSink defines the interface for persisting match records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MatchSink interface {
	// Append atomically appends line followed by a newline.
	// It is safe for concurrent use.
	Append(line string) error
}

// MatchSinkFactory opens the sink at path, creating it if absent.
type MatchSinkFactory func(path string) (MatchSink, error)
