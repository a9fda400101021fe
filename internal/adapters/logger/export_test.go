package logger

// ErrorEntry mirrors errorEntry for white-box tests.
type ErrorEntry = errorEntry

// Exported for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// NewErrorEntry builds an entry for formatting tests.
func NewErrorEntry(message string, metadata map[string]any) ErrorEntry {
	return errorEntry{message: message, metadata: metadata}
}

// Message returns the entry's message.
func (e errorEntry) Message() string { return e.message }

// Metadata returns the entry's metadata.
func (e errorEntry) Metadata() map[string]any { return e.metadata }
