package critique

import (
	"fmt"
	"strings"
)

func (c *Composer) style(name string) Section {
	description := undefinedStyle
	if s, ok := c.rules.Style(name); ok && s.Description != "" {
		description = s.Description
	}
	descriptor := c.selector.Select(styleDescriptors, thresholdDescriptor)

	var b strings.Builder
	fmt.Fprintf(&b, "DETECTED ARCHITECTURAL MOVEMENT: %s\n\n", strings.ToUpper(name))
	fmt.Fprintf(&b, "STYLISTIC CHARACTERISTICS: %s\n\n", description)
	b.WriteString("THIS CLASSIFICATION SUGGESTS THE DESIGN OPERATES WITHIN ESTABLISHED ARCHITECTURAL\n")
	b.WriteString("PARADIGMS WHILE POTENTIALLY OFFERING CONTEMPORARY INTERPRETATIONS OF TRADITIONAL FORMS.\n")
	fmt.Fprintf(&b, "THE STYLISTIC COHERENCE INDICATES %s\n", descriptor)
	b.WriteString("DESIGN DECISION-MAKING PROCESSES.\n")

	return Section{Kind: SectionStyle, Title: "STYLISTIC ANALYSIS", Body: b.String()}
}
