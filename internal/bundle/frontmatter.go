package bundle

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the frontmatter fence line.
const Delimiter = "---"

// Frontmatter is the parsed metadata block of a markdown document.
type Frontmatter struct {
	// Keys holds the flat key/value pairs decoded from the block.
	Keys map[string]string

	// Body is the document content below the block (or the whole document
	// when no frontmatter is present).
	Body string

	// Present reports whether a well-formed block was found.
	Present bool

	// Raw is the verbatim block text between the delimiters, excluding them.
	Raw string
}

// Subcategory returns the declared subcategory, or "" when absent.
func (f *Frontmatter) Subcategory() string {
	return f.Keys["subcategory"]
}

// BoolFlag returns the named key interpreted as a boolean, defaulting to
// false when the key is absent or not a recognized boolean literal.
func (f *Frontmatter) BoolFlag(name string) bool {
	switch strings.ToLower(strings.TrimSpace(f.Keys[name])) {
	case "true", "yes", "on":
		return true
	default:
		return false
	}
}

// ParseFrontmatter extracts the leading frontmatter block from a document
// using a two-state scanner: the opening delimiter must be the very first
// line, and the block ends at the next delimiter line. Delimiter-like text
// later in the body (for example inside fenced code blocks) never counts.
// A block with no closing delimiter is treated as absent.
func ParseFrontmatter(doc string) *Frontmatter {
	fm := &Frontmatter{Keys: map[string]string{}, Body: doc}

	lines := splitLines(doc)
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != Delimiter {
		return fm
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") != Delimiter {
			continue
		}

		raw := strings.Join(lines[1:i], "\n")
		keys, err := decodeFlatKeys(raw)
		if err != nil {
			// Malformed YAML inside the fences: treat as no frontmatter.
			return fm
		}

		fm.Present = true
		fm.Raw = raw
		fm.Keys = keys
		fm.Body = strings.Join(lines[i+1:], "\n")
		return fm
	}

	// No closing delimiter.
	return fm
}

// InjectSubcategory returns the document with subcategory set in its
// frontmatter. Existing keys keep their lines verbatim; a document without
// frontmatter gains a block containing only the subcategory, with the
// original content unchanged below it.
func InjectSubcategory(doc, subcategory string) string {
	fm := ParseFrontmatter(doc)

	if !fm.Present {
		return fmt.Sprintf("%s\nsubcategory: %q\n%s\n%s", Delimiter, subcategory, Delimiter, doc)
	}

	var out []string
	out = append(out, Delimiter)
	replaced := false
	for _, line := range splitLines(fm.Raw) {
		key, _, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(key) == "subcategory" {
			out = append(out, fmt.Sprintf("subcategory: %q", subcategory))
			replaced = true
			continue
		}
		out = append(out, line)
	}
	if !replaced {
		out = append(out, fmt.Sprintf("subcategory: %q", subcategory))
	}
	out = append(out, Delimiter)
	out = append(out, fm.Body)
	return strings.Join(out, "\n")
}

// decodeFlatKeys decodes a frontmatter block into string key/value pairs.
// Non-scalar values are rendered with fmt for pass-through keys.
func decodeFlatKeys(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]string{}, nil
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}

	keys := make(map[string]string, len(decoded))
	for k, v := range decoded {
		switch val := v.(type) {
		case string:
			keys[k] = val
		case nil:
			keys[k] = ""
		default:
			keys[k] = fmt.Sprintf("%v", val)
		}
	}
	return keys, nil
}

// splitLines splits on \n without discarding empty trailing lines the way
// bufio.Scanner would.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
