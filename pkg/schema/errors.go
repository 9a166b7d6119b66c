package schema

import (
	"fmt"
	"strings"
)

// SchemaNotFoundError is returned when no schema is bundled for a
// STAC version and object type pair.
type SchemaNotFoundError struct {
	Version string
	Type    string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("schema: no bundled schema for %s/%s", e.Version, e.Type)
}

// Violation is a single schema conformance failure.
type Violation struct {
	InstanceLocation string `json:"instanceLocation"`
	KeywordLocation  string `json:"keywordLocation"`
	Message          string `json:"message"`
}

func (v Violation) String() string {
	loc := v.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, v.Message)
}

// ValidationError reports that a document does not conform to the schema
// of its declared STAC version and type.
type ValidationError struct {
	Version    string
	Type       string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("schema: %s document does not conform to STAC %s: %s",
		e.Type, e.Version, strings.Join(parts, "; "))
}
