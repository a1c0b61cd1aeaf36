package dataset

import "fmt"

// The loader reports validation failures through a closed set of typed
// errors so callers can branch on the failure kind with errors.As. Every
// variant carries enough context (zero-based record index, field name, raw
// value) to locate the offending YAML entry without re-parsing.

// noRecord marks errors about the top-level document rather than a record.
const noRecord = -1

// StructuralError reports a document or record with the wrong shape: the
// top-level value or an observable entry is not a mapping, or the
// observables field is not a list.
type StructuralError struct {
	Index  int // record index, or -1 for the top-level document
	Detail string
}

func (e *StructuralError) Error() string {
	if e.Index == noRecord {
		return fmt.Sprintf("dataset: %s", e.Detail)
	}
	return fmt.Sprintf("dataset: observable %d %s", e.Index, e.Detail)
}

// MissingFieldError reports an absent required field.
type MissingFieldError struct {
	Index int // record index, or -1 for a top-level field
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Index == noRecord {
		return fmt.Sprintf("dataset: missing %q", e.Field)
	}
	return fmt.Sprintf("dataset: observable %d missing %q", e.Index, e.Field)
}

// TypeMismatchError reports a field whose value has the wrong kind, such as
// a boolean where a number is required.
type TypeMismatchError struct {
	Index    int // record index, or -1 for a top-level field
	Field    string
	Expected string
	Value    any
}

func (e *TypeMismatchError) Error() string {
	if e.Index == noRecord {
		return fmt.Sprintf("dataset: field %q must be a %s", e.Field, e.Expected)
	}
	return fmt.Sprintf("dataset: observable %d field %q must be a %s", e.Index, e.Field, e.Expected)
}

// RecordError attaches the record index to a conversion failure raised by
// the unit system, preserving the underlying error for errors.As.
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("dataset: observable %d field %q: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
