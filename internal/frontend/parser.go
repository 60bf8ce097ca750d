package frontend

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Frontmatter represents parsed frontmatter data
type Frontmatter struct {
	Data map[string]any
	Body string
}

// String returns the value of a string field, or "" when absent or not a string.
func (f *Frontmatter) String(key string) string {
	if v, ok := f.Data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// ParseYAMLFrontmatter extracts YAML frontmatter from markdown content. The block
// must open on the first line; anything else is treated as plain body text.
func ParseYAMLFrontmatter(content string) (*Frontmatter, error) {
	noFrontmatter := &Frontmatter{Data: map[string]any{}, Body: content}

	trimmed := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(trimmed, delimiter) {
		return noFrontmatter, nil
	}
	rest := strings.TrimPrefix(trimmed, delimiter)
	if !strings.HasPrefix(rest, "\n") && !strings.HasPrefix(rest, "\r\n") {
		return noFrontmatter, nil
	}

	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return noFrontmatter, nil
	}
	block := rest[:end]
	body := rest[end+len("\n"+delimiter):]

	data := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &data); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}

	return &Frontmatter{Data: data, Body: body}, nil
}
