// internal/media/media.go
//
// Image upload validation and storage.
//
// Context
// -------
// Admin forms attach one image at a time.  Upload() checks the declared
// content type against a fixed allow-list, enforces the 5 MiB cap, derives
// a collision-resistant key, and hands the bytes to a Storage backend in
// one call.  There is no multipart or resumable protocol and no retry.
//
// Workflow
// --------
//  1. Content type: the declared one, or sniffed with mimetype when the
//     client sent none.
//  2. Size: rejected above MaxSize.
//  3. Key: "public-media/<unix millis>-<name>" with every character outside
//     [a-zA-Z0-9.-] removed from the name.
//  4. Storage.Put returns the public URL.
//
// Notes
// -----
// • Validation errors carry the user-facing message as their text.
// • Backend failures are wrapped in *StoreError and never shown raw.
package media

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSize is the upload cap in bytes.
const MaxSize = 5 * 1024 * 1024

// Folder prefixes every storage key.
const Folder = "public-media"

var (
	ErrNoFile          = errors.New("No file provided")
	ErrUnsupportedType = errors.New("Invalid file type. Only JPEG, PNG, and WebP are allowed.")
	ErrTooLarge        = errors.New("File size too large. Maximum 5MB allowed.")
)

var allowed = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// StoreError reports a failed backend write.
type StoreError struct {
	Key string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("media: store %s: %v", e.Key, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// Storage persists one object and returns its public URL.
type Storage interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// File is one uploaded blob.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Result is returned to the caller on success.
type Result struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Uploader validates and stores images.
type Uploader struct {
	storage Storage
	now     func() time.Time
}

// NewUploader returns an Uploader writing to s.
func NewUploader(s Storage) *Uploader {
	return &Uploader{storage: s, now: time.Now}
}

// Upload validates f and stores it.
func (u *Uploader) Upload(ctx context.Context, f File) (Result, error) {
	ct, err := Check(f)
	if err != nil {
		return Result{}, err
	}
	key := Key(f.Name, u.now())
	url, err := u.storage.Put(ctx, key, ct, f.Body)
	if err != nil {
		return Result{}, &StoreError{Key: key, Err: err}
	}
	return Result{URL: url, Path: key}, nil
}

// Check returns the effective content type of f or a validation error.
func Check(f File) (string, error) {
	if f.Name == "" && len(f.Body) == 0 {
		return "", ErrNoFile
	}
	ct := baseType(f.ContentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = baseType(mimetype.Detect(f.Body).String())
	}
	if !allowed[ct] {
		return "", ErrUnsupportedType
	}
	if len(f.Body) > MaxSize {
		return "", ErrTooLarge
	}
	return ct, nil
}

// IsValidation reports whether err should be shown to the uploader as-is.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoFile) || errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrTooLarge)
}

// Key builds the storage key for name uploaded at now.
func Key(name string, now time.Time) string {
	return Folder + "/" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + unsafeName.ReplaceAllString(name, "")
}

func baseType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}
