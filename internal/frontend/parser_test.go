package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantData map[string]any
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid_simple_frontmatter",
			input: `---
title: Harbour Library
author: J. Smith
---
# Proposal

This is the body.`,
			wantData: map[string]any{
				"title":  "Harbour Library",
				"author": "J. Smith",
			},
			wantBody: "\n# Proposal\n\nThis is the body.",
		},
		{
			name:     "no_frontmatter",
			input:    "# Just Markdown\n\nNo frontmatter here.",
			wantData: map[string]any{},
			wantBody: "# Just Markdown\n\nNo frontmatter here.",
		},
		{
			name:     "missing_closing_delimiter",
			input:    "---\ntitle: test\n# Missing closing",
			wantData: map[string]any{},
			wantBody: "---\ntitle: test\n# Missing closing",
		},
		{
			name:     "empty_frontmatter",
			input:    "---\n---\n# Content",
			wantData: map[string]any{},
			wantBody: "\n# Content",
		},
		{
			name:     "horizontal_rule_later_in_body",
			input:    "Intro text\n\n---\n\nMore text",
			wantData: map[string]any{},
			wantBody: "Intro text\n\n---\n\nMore text",
		},
		{
			name:     "byte_order_mark",
			input:    "\ufeff---\ntitle: BOM\n---\nbody",
			wantData: map[string]any{"title": "BOM"},
			wantBody: "\nbody",
		},
		{
			name:    "invalid_yaml",
			input:   "---\ntitle: [unclosed\n---\nbody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := ParseYAMLFrontmatter(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid frontmatter")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, fm.Data)
			assert.Equal(t, tt.wantBody, fm.Body)
		})
	}
}

func TestFrontmatter_String(t *testing.T) {
	fm := &Frontmatter{Data: map[string]any{
		"title":  "  Padded  ",
		"year":   2024,
		"author": "A. Author",
	}}

	assert.Equal(t, "Padded", fm.String("title"))
	assert.Equal(t, "A. Author", fm.String("author"))
	assert.Equal(t, "", fm.String("year"))
	assert.Equal(t, "", fm.String("missing"))
}
