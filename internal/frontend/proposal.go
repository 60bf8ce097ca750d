package frontend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Proposal is a design proposal ready for critique.
type Proposal struct {
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Text   string `json:"-" yaml:"-"`
}

// Name returns the title, falling back to the file name.
func (p Proposal) Name() string {
	if p.Title != "" {
		return p.Title
	}
	if p.Path != "" {
		return filepath.Base(p.Path)
	}
	return "proposal"
}

// IsMarkdown reports whether path has a markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// ParseProposal builds a Proposal from raw content. Markdown content may carry
// frontmatter with title and author, and is reduced to plain prose; other
// content is used verbatim.
func ParseProposal(path, content string) (Proposal, error) {
	p := Proposal{Path: path, Text: content}
	if !IsMarkdown(path) {
		return p, nil
	}

	fm, err := ParseYAMLFrontmatter(content)
	if err != nil {
		return Proposal{}, fmt.Errorf("%s: %w", path, err)
	}
	p.Title = fm.String("title")
	p.Author = fm.String("author")
	p.Text = PlainText([]byte(fm.Body))
	return p, nil
}

// LoadProposal reads and parses a proposal file.
func LoadProposal(path string) (Proposal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Proposal{}, fmt.Errorf("failed to read proposal: %w", err)
	}
	return ParseProposal(path, string(data))
}
