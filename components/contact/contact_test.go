package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

type fakeContacts struct {
	got []entity.Contact
	err error
}

func (f *fakeContacts) Create(_ context.Context, c entity.Contact) (entity.Contact, error) {
	if f.err != nil {
		return c, f.err
	}
	c.ID = "c-1"
	f.got = append(f.got, c)
	return c, nil
}

func serve(t *testing.T, repo Creator, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	r := chi.NewRouter()
	(&Component{Contacts: repo}).Routes(r)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	var out map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %q", rec.Body.String())
	}
	return rec, out
}

func errorOf(t *testing.T, out map[string]json.RawMessage) string {
	t.Helper()
	var s string
	_ = json.Unmarshal(out["error"], &s)
	return s
}

func TestSubmit_Created(t *testing.T) {
	repo := &fakeContacts{}
	rec, out := serve(t, repo, `{"name":"Budi","email":"BUDI@Test.com ","phone":"0812-345-6789",
		"service_type":"advertising","message":" Hello "}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(repo.got) != 1 {
		t.Fatalf("inserted %d rows", len(repo.got))
	}
	row := repo.got[0]
	if row.Email != "budi@test.com" || row.Phone != "08123456789" || row.Message != "Hello" {
		t.Errorf("row = %+v", row)
	}
	if row.Company != nil {
		t.Errorf("empty company stored as %q", *row.Company)
	}

	var msg string
	_ = json.Unmarshal(out["message"], &msg)
	if msg != MsgCreated {
		t.Errorf("message = %q", msg)
	}
	var data entity.Contact
	if err := json.Unmarshal(out["data"], &data); err != nil || data.ID != "c-1" {
		t.Errorf("data = %s (%v)", out["data"], err)
	}
}

func TestSubmit_Invalid(t *testing.T) {
	cases := []struct {
		name, body, want string
	}{
		{"missing field", `{"name":"Budi","email":"a@b.co","phone":"08123456789","service_type":"advertising"}`, form.MsgRequired},
		{"bad email", `{"name":"Budi","email":"a@b","phone":"08123456789","service_type":"advertising","message":"x"}`, form.MsgEmail},
		{"bad phone", `{"name":"Budi","email":"a@b.co","phone":"12345","service_type":"advertising","message":"x"}`, form.MsgPhone},
		{"bad service", `{"name":"Budi","email":"a@b.co","phone":"08123456789","service_type":"catering","message":"x"}`, form.MsgServiceType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeContacts{}
			rec, out := serve(t, repo, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := errorOf(t, out); got != tc.want {
				t.Errorf("error = %q, want %q", got, tc.want)
			}
			if len(repo.got) != 0 {
				t.Error("invalid submission reached the store")
			}
		})
	}
}

func TestSubmit_StoreFailure(t *testing.T) {
	repo := &fakeContacts{err: &store.Error{Op: "create", Table: "contacts", Err: errors.New("connection refused")}}
	rec, out := serve(t, repo, `{"name":"Budi","email":"a@b.co","phone":"08123456789","service_type":"building_me","message":"x"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorOf(t, out); got != MsgSaveFailed {
		t.Errorf("error = %q", got)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("backend error text leaked to the client")
	}
}

func TestSubmit_MalformedBody(t *testing.T) {
	rec, out := serve(t, &fakeContacts{}, `{"name":`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorOf(t, out); got != MsgServerError {
		t.Errorf("error = %q", got)
	}
}
