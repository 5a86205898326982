// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                  – dotenv values,
//   • `conf/global.yaml`                    – primary static file,
//   • `BKT_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with `vault:` is resolved through the
// Vault client *before* unmarshalling, so the model never stores Vault
// references, only plain strings.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • Durations accept Go syntax ("10s", "1m").
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Backend.ServiceRoleKey is server-only and is never serialised into a
//     response.

package config

import "time"

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"min=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"min=0"`
}

// Database selects the SQL driver and connection pool.
type Database struct {
	Driver  string `koanf:"driver"   validate:"required,oneof=mysql pgx"`
	DSN     string `koanf:"dsn"      validate:"required"`
	MaxOpen int    `koanf:"max_open" validate:"min=0"`
	MaxIdle int    `koanf:"max_idle" validate:"min=0"`
}

// Backend describes the hosted platform project.
type Backend struct {
	URL             string `koanf:"url"               validate:"omitempty,url"`
	AnonKey         string `koanf:"anon_key"`
	ServiceRoleKey  string `koanf:"service_role_key"`
	AuthRedirectURL string `koanf:"auth_redirect_url"`
}

// Storage selects where uploaded media goes.
type Storage struct {
	Driver        string `koanf:"driver"          validate:"required,oneof=hosted local"`
	Bucket        string `koanf:"bucket"`
	LocalDir      string `koanf:"local_dir"`
	PublicBaseURL string `koanf:"public_base_url"`
}

// Admin is the single back-office identity.
type Admin struct {
	Email         string `koanf:"email"          validate:"omitempty,email"`
	PasswordHash  string `koanf:"password_hash"`
	SessionSecret string `koanf:"session_secret" validate:"required,min=16"`
	CSRFSecret    string `koanf:"csrf_secret"`
}

// Log configures internal/logger.
type Log struct {
	Dir   string `koanf:"dir"`
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

// GeoIP points at an optional GeoLite2-City database.
type GeoIP struct {
	Path string `koanf:"path"`
}

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // BKT_ROOT or discovered parent
}

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Backend  Backend  `koanf:"backend"`
	Storage  Storage  `koanf:"storage"`
	Admin    Admin    `koanf:"admin"`
	Log      Log      `koanf:"log"`
	GeoIP    GeoIP    `koanf:"geoip"`
	Paths    Paths    `koanf:"-"`
}

// RedirectAfterLogin is where the admin lands after signing in.
func (c *Config) RedirectAfterLogin() string {
	if c.Backend.AuthRedirectURL != "" {
		return c.Backend.AuthRedirectURL
	}
	return "/admin"
}

func (c *Config) applyDefaults() {
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "public-media"
	}
	if c.Storage.Driver == "local" && c.Storage.PublicBaseURL == "" {
		c.Storage.PublicBaseURL = "/media"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
}
