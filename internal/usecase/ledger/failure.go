package ledger

import "fmt"

// FailureKind classifies why a ledger operation was refused.
type FailureKind string

const (
	// KindValidation: the request breaks a business rule. No write occurred.
	KindValidation FailureKind = "validation"
	// KindSequenceConflict: the computed next sequence number was taken at
	// write time (concurrent payment). Safe to retry.
	KindSequenceConflict FailureKind = "sequence_conflict"
	// KindPersistence: the storage layer rejected a read or write. The
	// transaction was rolled back; nothing partial remains.
	KindPersistence FailureKind = "persistence"
)

// Failure is the structured outcome for every refused ledger operation:
// a kind plus a human-readable reason. Presentation is the caller's job.
type Failure struct {
	Kind   FailureKind
	Reason string
	cause  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Reason)
}

func (f *Failure) Unwrap() error { return f.cause }

func validationf(format string, args ...any) *Failure {
	return &Failure{Kind: KindValidation, Reason: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) *Failure {
	return &Failure{Kind: KindSequenceConflict, Reason: fmt.Sprintf(format, args...)}
}

func persistence(err error) *Failure {
	return &Failure{Kind: KindPersistence, Reason: err.Error(), cause: err}
}
