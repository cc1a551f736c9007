package registration

import (
	"errors"
	"fmt"
)

// ErrPasswordMismatch is reported when a structurally valid submission has a
// confirmation that differs from the password.
var ErrPasswordMismatch = errors.New("passwords do not match")

// FieldError is a structural violation on one field.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
