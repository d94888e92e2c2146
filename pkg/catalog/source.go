// Package catalog loads the static product catalog.
//
// A catalog is loaded exactly once per session with a single attempt: there
// is no retry and no timeout. Failures surface as LoadFailure errors.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	cblog "github.com/charmbracelet/log"
	apperrors "github.com/darksworm/lumina/pkg/errors"
	"github.com/darksworm/lumina/pkg/model"
)

// DefaultLocation is the catalog path used when nothing else is configured.
const DefaultLocation = "app.json"

// Source loads the product list from somewhere.
type Source interface {
	Load(ctx context.Context) ([]model.Product, error)
	Location() string
}

// NewSource picks a file or HTTP source based on the location string.
func NewSource(location string) Source {
	if location == "" {
		location = DefaultLocation
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, nil)
	}
	return &FileSource{Path: location}
}

// FileSource reads a catalog from the local filesystem.
type FileSource struct {
	Path string
}

// Location implements Source
func (s *FileSource) Location() string { return s.Path }

// Load implements Source
func (s *FileSource) Load(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.LoadFailure(apperrors.CodeReadFailed, "catalog load cancelled", err).
			WithContext("source", s.Path)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, apperrors.LoadFailure(apperrors.CodeReadFailed, "failed to read catalog", err).
			WithContext("source", s.Path)
	}
	products, perr := parseByName(s.Path, data)
	if perr != nil {
		return nil, perr.WithContext("source", s.Path)
	}
	return products, nil
}

// HTTPSource fetches a catalog document over HTTP(S).
type HTTPSource struct {
	URL        string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTP source. A nil client gets a plain client with
// no overall timeout; the context is the only way to abandon the request.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConnsPerHost = 1
		client = &http.Client{Transport: transport}
	}
	return &HTTPSource{URL: url, httpClient: client}
}

// Location implements Source
func (s *HTTPSource) Location() string { return s.URL }

// Load implements Source
func (s *HTTPSource) Load(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, apperrors.LoadFailure(apperrors.CodeFetchFailed, "failed to build catalog request", err).
			WithContext("source", s.URL)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.LoadFailure(apperrors.CodeFetchFailed, "failed to fetch catalog", err).
			WithContext("source", s.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.LoadFailure(apperrors.CodeHTTPStatus, "unexpected catalog response", nil).
			WithDetails(resp.Status).
			WithContext("source", s.URL).
			WithContext("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.LoadFailure(apperrors.CodeFetchFailed, "failed to read catalog response", err).
			WithContext("source", s.URL)
	}

	name := s.URL
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		name = "response.yaml"
	}
	products, perr := parseByName(name, body)
	if perr != nil {
		return nil, perr.WithContext("source", s.URL)
	}
	return products, nil
}

// parseByName dispatches on the file extension; anything that is not YAML is
// treated as JSON.
func parseByName(name string, data []byte) ([]model.Product, *apperrors.LumaError) {
	ext := strings.ToLower(filepath.Ext(strings.SplitN(name, "?", 2)[0]))
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func logSkipped(kind string, index int, reason string) {
	cblog.With("component", "catalog").Debug(fmt.Sprintf("Skipping %s catalog entry", kind), "index", index, "reason", reason)
}
