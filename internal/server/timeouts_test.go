package server

import (
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	srv := New(":0", http.NotFoundHandler(), Timeouts{Write: 30 * time.Second})
	if srv.ReadTimeout != 10*time.Second || srv.WriteTimeout != 30*time.Second || srv.IdleTimeout != 60*time.Second {
		t.Fatalf("timeouts = %v / %v / %v", srv.ReadTimeout, srv.WriteTimeout, srv.IdleTimeout)
	}
}
