// internal/form/csrf.go
//
// Stateless CSRF tokens for admin mutations.
//
// Context
//   The admin login response hands the browser a token that must be echoed
//   in the X-CSRF-Token header on every state-changing admin request.  The
//   token is stateless:
//
//      base64url( nonce | unixMicro | HMAC_SHA256(secret, nonce+unixMicro) )
//
//   •  nonce – 16 random bytes.
//   •  unixMicro – microseconds since Unix epoch, 8 bytes, big-endian.
//   •  HMAC – keyed with admin.csrf_secret from configuration.
//
//   Validation checks the signature and ensures the timestamp is within
//   MaxAge.
//
// Workflow
//   •  NewCSRF(secret)     → signer; an empty secret gets a random key.
//   •  Generate()          → token string for the login response.
//   •  Verify(tok)         → constant-time verify; false on any failure.
//   •  Require(next)       → middleware rejecting unsafe methods with 403.
//
//------------------------------------------------------------------------------

package form

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
)

const (
	tokenBytes = 16 + 8 + sha256.Size // nonce + ts + sig

	// MaxAge is the token validity window.
	MaxAge = 12 * time.Hour

	// HeaderName carries the token on admin mutations.
	HeaderName = "X-CSRF-Token"
)

// CSRF signs and verifies tokens with one secret.
type CSRF struct {
	secret []byte
	now    func() time.Time
}

// NewCSRF returns a signer keyed with secret.  When secret is empty a
// random key is generated; tokens then do not survive a restart.
func NewCSRF(secret []byte) *CSRF {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
		zap.L().Warn("admin.csrf_secret not set, using random key")
	}
	return &CSRF{secret: secret, now: time.Now}
}

// Generate creates a new token.
func (c *CSRF) Generate() (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(c.now().UnixMicro()))

	buf := make([]byte, 0, tokenBytes)
	buf = append(buf, nonce...)
	buf = append(buf, ts...)
	buf = append(buf, c.sign(nonce, ts)...)

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Verify returns true if tok passes HMAC and age checks.
func (c *CSRF) Verify(tok string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil || len(raw) != tokenBytes {
		return false
	}

	nonce, tsBytes, sig := raw[:16], raw[16:24], raw[24:]

	issued := time.UnixMicro(int64(binary.BigEndian.Uint64(tsBytes)))
	now := c.now()
	if now.Sub(issued) > MaxAge || issued.Sub(now) > time.Minute {
		return false
	}
	return hmac.Equal(sig, c.sign(nonce, tsBytes))
}

// Require rejects POST, PUT, PATCH, and DELETE requests whose X-CSRF-Token
// header does not verify.
func (c *CSRF) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			if !c.Verify(r.Header.Get(HeaderName)) {
				respond.Error(w, http.StatusForbidden, "Token keamanan tidak valid. Silakan muat ulang halaman.")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (c *CSRF) sign(nonce, ts []byte) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(nonce)
	mac.Write(ts)
	return mac.Sum(nil)
}
