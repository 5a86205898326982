// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `Load()` calls `validateStruct` immediately after it unmarshals the
// merged Koanf tree.  Any tag mismatch or validation error aborts startup,
// so the binary never runs with partial or malformed configuration.
//
// Field tags cover single values.  Rules that span sections are registered
// as a struct-level validation on Config:
//
//   • storage.driver=hosted needs backend.url and backend.service_role_key.
//   • storage.driver=local needs storage.local_dir.
//   • admin.email and admin.password_hash come as a pair.

package config

import "github.com/go-playground/validator/v10"

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterStructValidation(crossSection, Config{})
	return val
}

func crossSection(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	switch c.Storage.Driver {
	case "hosted":
		if c.Backend.URL == "" {
			sl.ReportError(c.Backend.URL, "Backend.URL", "URL", "required_for_hosted", "")
		}
		if c.Backend.ServiceRoleKey == "" {
			sl.ReportError(c.Backend.ServiceRoleKey, "Backend.ServiceRoleKey", "ServiceRoleKey", "required_for_hosted", "")
		}
	case "local":
		if c.Storage.LocalDir == "" {
			sl.ReportError(c.Storage.LocalDir, "Storage.LocalDir", "LocalDir", "required_for_local", "")
		}
	}
	if (c.Admin.Email == "") != (c.Admin.PasswordHash == "") {
		sl.ReportError(c.Admin.PasswordHash, "Admin.PasswordHash", "PasswordHash", "admin_pair", "")
	}
}

// validateStruct returns the validation errors, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
