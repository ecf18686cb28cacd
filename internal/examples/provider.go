// Package examples compiles bundle examples into standalone and grouped
// runnable Terraform projects.
package examples

import (
	"fmt"
	"strings"
)

// ProviderSpec parameterizes the generated provider declaration.
type ProviderSpec struct {
	// Name is the provider's local name.
	Name string

	// Source is the registry source address. Empty falls back to
	// hashicorp/<name>.
	Source string

	// Version is the version constraint line. Empty omits the constraint.
	Version string
}

// ProviderBlock renders the terraform required_providers declaration plus an
// empty provider configuration block.
func (p ProviderSpec) ProviderBlock() string {
	source := p.Source
	if source == "" {
		source = "hashicorp/" + p.Name
	}

	var b strings.Builder
	b.WriteString("terraform {\n")
	b.WriteString("  required_providers {\n")
	fmt.Fprintf(&b, "    %s = {\n", p.Name)
	fmt.Fprintf(&b, "      source = %q\n", source)
	if p.Version != "" {
		fmt.Fprintf(&b, "      version = %q\n", p.Version)
	}
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "provider %q {}\n", p.Name)
	return b.String()
}

// descriptionFromExample extracts a one-line description from the first
// comment line that starts with a single hash (lines starting with "##" are
// section markers, not descriptions).
func descriptionFromExample(src, fallback string) string {
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "##") {
			continue
		}
		desc := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		if desc != "" {
			return desc
		}
	}
	return fallback
}
