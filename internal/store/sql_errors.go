package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories which domain error,
// if any, a failed statement corresponds to.
type ErrorClassification int

const (
	// Unclassified is the default for errors without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE constraint rejected the statement.
	UniqueViolation

	// Retryable marks transient failures (lost connection, busy database,
	// serialization conflict). Nothing retries them; they are logged as such.
	Retryable
)

// String returns a short label used in log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}
