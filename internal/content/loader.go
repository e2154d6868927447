package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// SchemaVersion is the only content document version this package reads.
const SchemaVersion = 1

var (
	// defaultContent is parsed once from the embedded document
	defaultContent     *Content
	defaultContentOnce sync.Once
	defaultContentErr  error
)

// Load returns the embedded default content. It is parsed once; callers must
// treat the result as read-only.
func Load() (*Content, error) {
	defaultContentOnce.Do(func() {
		defaultContent, defaultContentErr = Parse(defaultYAML)
	})
	return defaultContent, defaultContentErr
}

// LoadFile reads and validates an override document from disk.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path when it is non-empty and the embedded content otherwise.
func LoadOrDefault(path string) (*Content, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the document against the rules the view layer depends on.
// The first problem found is returned as a *ValidationError.
func (c *Content) Validate() error {
	if c.Version != SchemaVersion {
		return invalid("version", "unsupported version %d (expected %d)", c.Version, SchemaVersion)
	}
	if strings.TrimSpace(c.Brand) == "" {
		return invalid("brand", "must not be empty")
	}

	for i, link := range c.Nav {
		field := fmt.Sprintf("nav[%d]", i)
		if strings.TrimSpace(link.Label) == "" {
			return invalid(field+".label", "must not be empty")
		}
		if !strings.HasPrefix(link.Href, "#") || len(link.Href) < 2 {
			return invalid(field+".href", "%q is not an in-page anchor", link.Href)
		}
	}

	if len(c.Features.Items) == 0 {
		return invalid("features.items", "catalog must contain at least one feature")
	}
	for i, f := range c.Features.Items {
		field := fmt.Sprintf("features.items[%d]", i)
		if strings.TrimSpace(f.Title) == "" {
			return invalid(field+".title", "must not be empty")
		}
		if !IsKnownIcon(f.Icon) {
			return invalid(field+".icon", "unknown icon %q", f.Icon)
		}
		if !IsKnownTheme(f.Theme) {
			return invalid(field+".theme", "unknown theme %q", f.Theme)
		}
	}

	return nil
}
