package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of non-empty, trimmed strings persisted as
// a JSON array in a TEXT column.
type StringList []string

// Value encodes the list as JSON.  A nil list is stored as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes a JSON array from string or []byte column data.  NULL and
// empty input decode to an empty list.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("entity: cannot scan %T into StringList", src)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("entity: decode StringList: %w", err)
	}
	*l = StringList(out)
	return nil
}

// MarshalJSON always emits an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// CleanList trims every entry and drops the ones left empty.  Order is
// preserved.
func CleanList(in []string) StringList {
	out := make(StringList, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ListInput is the editable form of a StringList: one single-line input per
// slot, empty slots allowed until submit.
type ListInput []string

// Add appends one empty slot.
func (l *ListInput) Add() { *l = append(*l, "") }

// Remove deletes the slot at index i.  Out-of-range indexes are ignored.
func (l *ListInput) Remove(i int) {
	if i < 0 || i >= len(*l) {
		return
	}
	*l = append((*l)[:i:i], (*l)[i+1:]...)
}

// Set overwrites the slot at index i.  Out-of-range indexes are ignored.
func (l ListInput) Set(i int, v string) {
	if i >= 0 && i < len(l) {
		l[i] = v
	}
}

// Clean returns the persisted shape of the list.
func (l ListInput) Clean() StringList { return CleanList(l) }

func inputOf(l StringList) ListInput {
	out := make(ListInput, len(l))
	copy(out, l)
	return out
}
