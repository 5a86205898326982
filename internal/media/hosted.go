package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

// Hosted writes to the backend platform's object storage REST API using
// the service-role key.  Objects are never overwritten.
type Hosted struct {
	BaseURL    string // project URL, no trailing slash
	Bucket     string
	ServiceKey string
	Client     *http.Client
}

// NewHosted returns a Hosted backend with a pooled cleanhttp client.
func NewHosted(baseURL, bucket, serviceKey string) *Hosted {
	return &Hosted{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Bucket:     bucket,
		ServiceKey: serviceKey,
		Client:     cleanhttp.DefaultPooledClient(),
	}
}

// Put uploads body under key and returns the public URL.
func (h *Hosted) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	endpoint := h.BaseURL + "/storage/v1/object/" + h.Bucket + "/" + key
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.ServiceKey)
	req.Header.Set("apikey", h.ServiceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age=3600")
	req.Header.Set("x-upsert", "false")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return h.PublicURL(key), nil
}

// PublicURL is the anonymous read URL for key.
func (h *Hosted) PublicURL(key string) string {
	return h.BaseURL + "/storage/v1/object/public/" + h.Bucket + "/" + key
}
