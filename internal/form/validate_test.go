// internal/form/validate_test.go
//
// Unit-tests for contact validation, draft validation, and CSRF tokens.
//
// Run: go test ./internal/form -v

package form

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
)

func validContact() *entity.ContactDraft {
	return &entity.ContactDraft{
		Name:        "Budi",
		Email:       "BUDI@Test.com ",
		Phone:       "0812-345-6789",
		ServiceType: "advertising",
		Message:     " Hello ",
	}
}

func TestValidateContact_Normalizes(t *testing.T) {
	c, err := ValidateContact(validContact())
	if err != nil {
		t.Fatalf("ValidateContact: %v", err)
	}
	if c.Email != "budi@test.com" || c.Phone != "08123456789" || c.Message != "Hello" {
		t.Fatalf("unexpected normalized row: %+v", c)
	}
}

func TestValidateContact_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *entity.ContactDraft)
		want   string
	}{
		{"missing name", func(d *entity.ContactDraft) { d.Name = "   " }, MsgRequired},
		{"missing message", func(d *entity.ContactDraft) { d.Message = "" }, MsgRequired},
		{"bad email", func(d *entity.ContactDraft) { d.Email = "a@b" }, MsgEmail},
		{"bad phone", func(d *entity.ContactDraft) { d.Phone = "12345" }, MsgPhone},
		{"bad service", func(d *entity.ContactDraft) { d.ServiceType = "plumbing" }, MsgServiceType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validContact()
			tc.mutate(d)
			_, err := ValidateContact(d)
			if !IsValidationError(err) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if err.Error() != tc.want {
				t.Fatalf("message = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	good := []string{"0812345678901", "+6281234567890", "62 812 3456 789", "021-555-0123"}
	bad := []string{"12345", "0812", "+1 555 123 4567", "08123456789012345", "08abc4567890"}
	for _, s := range good {
		if !ValidPhone(s) {
			t.Errorf("ValidPhone(%q) = false", s)
		}
	}
	for _, s := range bad {
		if ValidPhone(s) {
			t.Errorf("ValidPhone(%q) = true", s)
		}
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("a@b.co") {
		t.Error("a@b.co should be valid")
	}
	for _, s := range []string{"a@b", "ab.co", "a b@c.d", "@b.co"} {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true", s)
		}
	}
}

func TestValidateDraft(t *testing.T) {
	d := entity.NewTestimonialDraft()
	d.ClientName = "Sari"
	d.ClientPosition = "Owner"
	d.ClientCompany = "Warung"
	d.Testimonial = "Bagus"
	if err := ValidateDraft(d); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	d.Rating = 6
	d.ServiceCategory = "everything"
	err := ValidateDraft(d)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	names := map[string]bool{}
	for _, f := range ve.Fields {
		names[f.Name] = true
	}
	if !names["rating"] || !names["service_category"] {
		t.Fatalf("fields = %+v", ve.Fields)
	}
}

func TestValidateDraft_MediaURL(t *testing.T) {
	d := entity.NewBrandPartnerDraft()
	d.Name = "Daikin"
	d.LogoURL = "/placeholder.svg?height=80&width=120&text=Daikin"
	if err := ValidateDraft(d); err != nil {
		t.Fatalf("relative logo rejected: %v", err)
	}
	d.LogoURL = "javascript:alert(1)"
	if err := ValidateDraft(d); !IsValidationError(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCSRF_RoundTrip(t *testing.T) {
	c := NewCSRF([]byte("0123456789abcdef0123456789abcdef"))
	tok, err := c.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !c.Verify(tok) {
		t.Fatal("fresh token rejected")
	}
	if c.Verify(tok[:len(tok)-2] + "AA") {
		t.Fatal("tampered token accepted")
	}

	other := NewCSRF([]byte("ffffffffffffffffffffffffffffffff"))
	if other.Verify(tok) {
		t.Fatal("token accepted under another secret")
	}

	c.now = func() time.Time { return time.Now().Add(MaxAge + time.Minute) }
	if c.Verify(tok) {
		t.Fatal("expired token accepted")
	}
}

func TestCSRF_Require(t *testing.T) {
	c := NewCSRF([]byte("0123456789abcdef0123456789abcdef"))
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := c.Require(ok)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("GET status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("DELETE without token status = %d", rr.Code)
	}

	tok, _ := c.Generate()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set(HeaderName, tok)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("DELETE with token status = %d", rr.Code)
	}
}
