package loader

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// BuiltinLocation selects the question set compiled into the binary.
const BuiltinLocation = "builtin"

//go:embed sample.json
var sampleQuestions []byte

// Source fetches the raw bytes of a question resource.
type Source interface {
	// Name identifies the resource in errors and logs. Its extension
	// selects the decoder.
	Name() string

	// Fetch reads the whole resource.
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFor picks a Source for location: the builtin set, an http(s) URL,
// or a file path.
func SourceFor(location string) Source {
	switch {
	case location == BuiltinLocation:
		return EmbeddedSource{}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &HTTPSource{URL: location}
	default:
		return FileSource{Path: location}
	}
}

// FileSource reads a local file.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return f.Path }

func (f FileSource) Fetch(_ context.Context) ([]byte, error) {
	return os.ReadFile(f.Path)
}

// HTTPSource fetches a static resource with a single GET. No retries.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (h *HTTPSource) Name() string { return h.URL }

func (h *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, h.URL)
	}

	return io.ReadAll(resp.Body)
}

// EmbeddedSource serves the sample set shipped with the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "builtin.json" }

func (EmbeddedSource) Fetch(_ context.Context) ([]byte, error) {
	return sampleQuestions, nil
}
