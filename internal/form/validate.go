// internal/form/validate.go
//
// Server-side validation and normalization of submitted data.
//
// Context
//   Two kinds of input arrive here.  The public contact form posts a
//   ContactDraft, checked by hand-written rules whose order and messages
//   are part of the public API contract.  Admin editors post entity drafts,
//   checked by go-playground/validator through their struct tags.  Both
//   paths normalize first and validate second, and neither ever touches the
//   store: a failure here means nothing is written.
//
// Workflow
//   •  ValidateContact normalizes the draft, applies required → email →
//      phone → service type checks, and returns the row to insert.
//   •  ValidateDraft normalizes any entity draft and runs its tags.  Field
//      names in errors are the JSON names so clients can highlight inputs.
//   •  Failures are ValidationError values (see submit.go).
//
//------------------------------------------------------------------------------

package form

import (
	"errors"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
)

// User-facing messages for the contact form.
const (
	MsgRequired    = "Semua field wajib diisi"
	MsgEmail       = "Format email tidak valid"
	MsgPhone       = "Format nomor telepon tidak valid"
	MsgServiceType = "Jenis layanan tidak valid"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,13}$`)
)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidPhone reports whether s is an Indonesian number once spaces and
// hyphens are stripped.
func ValidPhone(s string) bool { return phoneRe.MatchString(entity.StripPhone(s)) }

// ValidateContact normalizes d in place and checks it.  On success it
// returns the contact row ready for insertion.
func ValidateContact(d *entity.ContactDraft) (entity.Contact, error) {
	d.Normalize()

	if d.Name == "" || d.Email == "" || d.Phone == "" || d.ServiceType == "" || d.Message == "" {
		return entity.Contact{}, fieldError("", MsgRequired)
	}
	if !ValidEmail(d.Email) {
		return entity.Contact{}, fieldError("email", MsgEmail)
	}
	if !ValidPhone(d.Phone) {
		return entity.Contact{}, fieldError("phone", MsgPhone)
	}
	if !entity.Category(d.ServiceType).Valid() {
		return entity.Contact{}, fieldError("service_type", MsgServiceType)
	}
	return d.Record(), nil
}

// Normalizer is implemented by every entity draft.
type Normalizer interface {
	Normalize()
}

// ValidateDraft normalizes d and validates its struct tags.
func ValidateDraft(d Normalizer) error {
	d.Normalize()

	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ErrorField{Name: fe.Field(), Message: draftMessage(fe)})
	}
	return ValidationError{Fields: out}
}

// -----------------------------------------------------------------------------
// validator wiring
// -----------------------------------------------------------------------------

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// enum: closed enumerations from internal/entity.
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(entity.Enum)
		return ok && e.Valid()
	})

	// mediaurl: absolute http(s) URL or a site-relative path.
	_ = v.RegisterValidation("mediaurl", func(fl validator.FieldLevel) bool {
		return isMediaURL(fl.Field().String())
	})

	return v
}

func isMediaURL(s string) bool {
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func draftMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " wajib diisi"
	case "enum":
		return name + " tidak valid"
	case "datetime":
		return name + " harus berformat YYYY-MM-DD"
	case "url", "mediaurl":
		return name + " harus berupa URL yang valid"
	case "min", "max":
		if name == "rating" {
			return "rating harus antara 1 dan 5"
		}
		return name + " di luar batas yang diizinkan"
	}
	return name + " tidak valid"
}
