// resources.go implements the sift://collections/{name} resource, giving
// clients a collection's records as context without calling a tool.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/sift/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyName indicates a resource URI without a collection name.
	ErrEmptyName = errors.New("empty collection name")
)

const collectionsURI = "sift://collections/"

// readCollection handles sift://collections/{name} resource requests.
func (h *handlers) readCollection(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.svc == nil {
		return nil, errors.New(ErrNotInitialised)
	}

	name, err := parseCollectionURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	recs, err := h.svc.Records(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	data, err := store.MarshalJSON(recs)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// parseCollectionURI extracts the collection name from a resource URI.
func parseCollectionURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, collectionsURI) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	name := strings.TrimSuffix(strings.TrimPrefix(uri, collectionsURI), "/")
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return name, nil
}
