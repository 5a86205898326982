package vault

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mapKV struct {
	data  map[string]map[string]any
	calls int
}

func (m *mapKV) Get(_ context.Context, mount, path string) (map[string]any, error) {
	m.calls++
	d, ok := m.data[mount+"/"+path]
	if !ok {
		return nil, errors.New("secret not found")
	}
	return d, nil
}

func TestParseRef(t *testing.T) {
	p, k, err := ParseRef("vault:secret/bkt/prod#service_role_key")
	if err != nil || p != "secret/bkt/prod" || k != "service_role_key" {
		t.Fatalf("ParseRef = %q, %q, %v", p, k, err)
	}
	for _, bad := range []string{"secret/bkt#k", "vault:secret#k", "vault:secret/bkt", "vault:secret/bkt#"} {
		if _, _, err := ParseRef(bad); err == nil {
			t.Errorf("ParseRef(%q) accepted", bad)
		}
	}
}

func TestResolveCaches(t *testing.T) {
	kv := &mapKV{data: map[string]map[string]any{
		"secret/bkt": {"session_secret": "s3cr3t", "port": 5432},
	}}
	c := NewWithKV(kv)
	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		v, err := c.Resolve(context.Background(), "vault:secret/bkt#session_secret")
		if err != nil || v != "s3cr3t" {
			t.Fatalf("Resolve = %q, %v", v, err)
		}
	}
	if kv.calls != 1 {
		t.Fatalf("calls = %d, want 1 (cached)", kv.calls)
	}

	now = now.Add(CacheTTL + time.Second)
	_, _ = c.Resolve(context.Background(), "vault:secret/bkt#session_secret")
	if kv.calls != 2 {
		t.Fatalf("calls after expiry = %d", kv.calls)
	}

	if _, err := c.Resolve(context.Background(), "vault:secret/bkt#port"); err == nil {
		t.Fatal("non-string value accepted")
	}
	if _, err := c.Resolve(context.Background(), "vault:secret/bkt#missing"); err == nil {
		t.Fatal("missing key accepted")
	}
	if _, err := c.Resolve(context.Background(), "vault:secret/other#x"); err == nil {
		t.Fatal("missing secret accepted")
	}
}
