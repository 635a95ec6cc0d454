package traffic

import "fmt"

// FieldError reports a required upstream field that was absent or could not
// be interpreted.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

func missing(field string) error {
	return &FieldError{Field: field, Reason: "missing"}
}

func invalid(field string, err error) error {
	return &FieldError{Field: field, Reason: err.Error()}
}
