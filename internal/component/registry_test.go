package component

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stub struct {
	name    string
	path    string
	initErr error
	inited  bool
}

func (s *stub) Name() string { return s.name }

func (s *stub) Init(Deps) error {
	s.inited = true
	return s.initErr
}

func (s *stub) Routes(r chi.Router) {
	r.Get(s.path, func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
}

func withRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	prev := registry
	registry = map[string]Component{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		registry = prev
		mu.Unlock()
	})
}

func TestAll_SortedByName(t *testing.T) {
	withRegistry(t)
	Register(&stub{name: "site"})
	Register(&stub{name: "admin"})
	Register(&stub{name: "contact"})

	var got []string
	for _, c := range All() {
		got = append(got, c.Name())
	}
	want := []string{"admin", "contact", "site"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() = %v", got)
		}
	}
}

func TestMount(t *testing.T) {
	withRegistry(t)
	a := &stub{name: "a", path: "/a"}
	b := &stub{name: "b", path: "/b"}
	Register(a)
	Register(b)

	r := chi.NewRouter()
	if err := Mount(r, Deps{Logger: zap.NewNop().Sugar()}); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if !a.inited || !b.inited {
		t.Fatal("Init not called")
	}
	for _, p := range []string{"/a", "/b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusTeapot {
			t.Errorf("GET %s = %d", p, rec.Code)
		}
	}
}

func TestMount_InitError(t *testing.T) {
	withRegistry(t)
	boom := errors.New("boom")
	Register(&stub{name: "bad", path: "/x", initErr: boom})

	if err := Mount(chi.NewRouter(), Deps{Logger: zap.NewNop().Sugar()}); !errors.Is(err, boom) {
		t.Fatalf("Mount err = %v", err)
	}
}
