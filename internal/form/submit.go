// internal/form/submit.go
//
// Validation error type and the JSON body decoder shared by handlers.
//
//------------------------------------------------------------------------------

package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// ErrorField describes a single validation failure so the client can show
// a field-level message.  Name is empty for form-level failures.
type ErrorField struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// ValidationError wraps []ErrorField and satisfies the error interface.
//
// Handlers distinguish user input errors from system failures via errors.As
// or IsValidationError.
type ValidationError struct{ Fields []ErrorField }

// Error returns the first field message, which is what the public API
// reports to the user.
func (ve ValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "form validation failed"
	}
	return ve.Fields[0].Message
}

func fieldError(name, msg string) ValidationError {
	return ValidationError{Fields: []ErrorField{{Name: name, Message: msg}}}
}

// IsValidationError reports whether err came from failed validation.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// DecodeJSON reads a JSON object from r into dst.  The body is capped at
// MaxBodyBytes.  Decoding failures are ordinary errors, not validation
// errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("form: empty body")
		}
		return fmt.Errorf("form: decode body: %w", err)
	}
	return nil
}
