package arff

// LineSource produces the lines of an ARFF document in order. Implementations
// drop comment lines (those beginning with %) and lines which cannot be
// decoded before they reach the loader. A read failure ends the stream and
// is reported by Err.
type LineSource interface {
	Next() (line string, ok bool) // Next returns the next line, or ok == false once the source is exhausted
	LineNumber() int              // LineNumber returns the 1-based position in the input of the last line returned by Next
	Name() string                 // Name returns the origin of the lines (a filename, or "" if there is none)
	Close() error                 // Close releases any resources held by the source
	Err() error                   // Err returns the read error which ended the stream early, or nil
}
