// internal/entity/entity_test.go
//
// Unit-tests for list cleaning, list slot editing, JSON column scanning,
// and draft normalization.
//
// Run: go test ./internal/entity -v

package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCleanList_DropsEmptyKeepsOrder(t *testing.T) {
	got := CleanList([]string{"", "Fast", "  ", "Reliable"})
	want := StringList{"Fast", "Reliable"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanList = %#v, want %#v", got, want)
	}
}

func TestListInput_AddRemove(t *testing.T) {
	var l ListInput
	l.Add()
	l.Add()
	l.Set(0, "a")
	l.Set(1, "b")
	l.Add()
	l.Set(2, "c")

	l.Remove(1)
	if !reflect.DeepEqual(l, ListInput{"a", "c"}) {
		t.Fatalf("after Remove(1): %#v", l)
	}
	l.Remove(7)
	if len(l) != 2 {
		t.Fatalf("out-of-range remove changed list: %#v", l)
	}
}

func TestStringList_ValueScan(t *testing.T) {
	v, err := StringList{"x", "y"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != `["x","y"]` {
		t.Fatalf("Value = %v", v)
	}

	var l StringList
	if err := l.Scan([]byte(`["x","y"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(l, StringList{"x", "y"}) {
		t.Fatalf("Scan = %#v", l)
	}
	if err := l.Scan(nil); err != nil || len(l) != 0 {
		t.Fatalf("Scan(nil) = %#v, %v", l, err)
	}
	if err := l.Scan(42); err == nil {
		t.Fatalf("Scan(int) expected error")
	}
}

func TestStringList_NilMarshalsAsArray(t *testing.T) {
	b, err := json.Marshal(struct {
		Tags StringList `json:"tags"`
	}{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"tags":[]}` {
		t.Fatalf("marshal = %s", b)
	}
}

func TestContactDraft_Normalize(t *testing.T) {
	d := &ContactDraft{
		Name:        "Budi",
		Email:       "BUDI@Test.com ",
		Phone:       "0812-345-6789",
		ServiceType: "advertising",
		Message:     " Hello ",
	}
	d.Normalize()
	c := d.Record()

	if c.Email != "budi@test.com" {
		t.Errorf("email = %q", c.Email)
	}
	if c.Phone != "08123456789" {
		t.Errorf("phone = %q", c.Phone)
	}
	if c.Message != "Hello" {
		t.Errorf("message = %q", c.Message)
	}
	if c.Company != nil {
		t.Errorf("company = %v, want nil", *c.Company)
	}
	if c.ServiceType != CategoryAdvertising {
		t.Errorf("service_type = %q", c.ServiceType)
	}
}

func TestServiceDraft_RecordCleansFeatures(t *testing.T) {
	d := NewServiceDraft()
	d.Title = "  Billboard  "
	d.Features = ListInput{"", "Fast", "  ", "Reliable"}
	d.Normalize()

	s := d.Record()
	if s.Title != "Billboard" {
		t.Errorf("title = %q", s.Title)
	}
	if !reflect.DeepEqual(s.Features, StringList{"Fast", "Reliable"}) {
		t.Errorf("features = %#v", s.Features)
	}
	if got := d.Fields()["features"]; !reflect.DeepEqual(got, StringList{"Fast", "Reliable"}) {
		t.Errorf("Fields features = %#v", got)
	}
}

func TestAudienceCovers(t *testing.T) {
	if !AudienceBoth.Covers(CategoryBuildingME) {
		t.Error("both should cover building_me")
	}
	if AudienceAdvertising.Covers(CategoryBuildingME) {
		t.Error("advertising should not cover building_me")
	}
}

func TestEnumValid(t *testing.T) {
	cases := []struct {
		e    Enum
		want bool
	}{
		{Category("advertising"), true},
		{Category("both"), false},
		{Audience("both"), true},
		{PartnerKind("supplier"), true},
		{PartnerKind("vendor"), false},
		{Icon("Wrench"), true},
		{Icon("wrench"), false},
	}
	for _, c := range cases {
		if got := c.e.Valid(); got != c.want {
			t.Errorf("%#v.Valid() = %v, want %v", c.e, got, c.want)
		}
	}
}
