package critique

import (
	"strings"
	"time"
)

// SectionKind identifies a report section.
type SectionKind string

// Report sections in output order.
const (
	SectionHeader          SectionKind = "header"
	SectionSummary         SectionKind = "summary"
	SectionPrinciples      SectionKind = "principles"
	SectionStyle           SectionKind = "style"
	SectionTechnical       SectionKind = "technical"
	SectionRecommendations SectionKind = "recommendations"
	SectionComparative     SectionKind = "comparative"
)

// Section is one titled block of report prose.
type Section struct {
	Kind  SectionKind `json:"kind" yaml:"kind"`
	Title string      `json:"title" yaml:"title"`
	Body  string      `json:"body" yaml:"body"`
}

// Text renders the section as it appears in the plain-text report.
func (s Section) Text() string {
	if s.Title == "" {
		return s.Body
	}
	return "\n" + Banner(s.Title) + "\n\n" + s.Body
}

// Banner decorates a section title.
func Banner(title string) string {
	return "▓▓▓ " + title + " ▓▓▓"
}

// Report is a composed critique.
type Report struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Score       float64   `json:"score" yaml:"score"`
	Sections    []Section `json:"sections" yaml:"sections"`
}

// Section returns the first section of the given kind.
func (r Report) Section(kind SectionKind) (Section, bool) {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// String joins every section into the plain-text report.
func (r Report) String() string {
	parts := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		parts[i] = s.Text()
	}
	return strings.Join(parts, "\n")
}
