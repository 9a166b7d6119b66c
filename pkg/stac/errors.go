package stac

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// ErrNoFetcher is returned by navigation methods on a view that was
// constructed without a Fetcher.
var ErrNoFetcher = errors.New("stac: no fetcher configured for navigation")

// MissingFieldError reports a required key absent from a document.
type MissingFieldError struct {
	Object string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("stac: %s has no %q field", e.Object, e.Field)
}

// FieldTypeError reports a key whose JSON value has an unexpected type.
type FieldTypeError struct {
	Object string
	Field  string
	Want   string
	Got    any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("stac: %s field %q is %T, want %s", e.Object, e.Field, e.Got, e.Want)
}

type (
	// ValidationError is returned by constructors when validation was
	// requested and the document does not conform to its schema.
	ValidationError = schema.ValidationError
	// SchemaNotFoundError is returned by constructors when validation was
	// requested and no schema is bundled for the document's version.
	SchemaNotFoundError = schema.SchemaNotFoundError
	// Violation is a single schema conformance failure.
	Violation = schema.Violation
)
