package weather

import "errors"

// FailureKind tags the outcome of a failed lookup. The taxonomy is
// flat: every failed invocation resolves to exactly one kind.
type FailureKind string

const (
	FailInvalidInput       FailureKind = "invalid_input"
	FailNotFound           FailureKind = "not_found"
	FailNetwork            FailureKind = "network_error"
	FailTimeout            FailureKind = "timeout"
	FailServiceUnavailable FailureKind = "service_unavailable"
)

// Failure is a classified lookup failure. It replaces a WeatherReport
// when the pipeline cannot produce one and carries a hint suitable for
// the calling agent to narrate. It satisfies error so inner stages can
// return it through ordinary error paths.
type Failure struct {
	Kind FailureKind `json:"kind"`
	Hint string      `json:"hint"`
}

// NewFailure builds a Failure with the given kind and hint.
func NewFailure(kind FailureKind, hint string) *Failure {
	return &Failure{Kind: kind, Hint: hint}
}

func (f *Failure) Error() string {
	return string(f.Kind) + ": " + f.Hint
}

// AsFailure unwraps a classified Failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
