// Package render composes a bundle's template with partials, examples, and
// schema markdown into final documentation markdown.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/sync/errgroup"

	"github.com/provide-io/plating/internal/bundle"
	"github.com/provide-io/plating/internal/errors"
)

// Engine renders bundle templates. Loaded template and partial contents are
// cached per bundle+name for the engine's lifetime; call Invalidate after a
// filesystem change.
type Engine struct {
	mu    sync.RWMutex
	cache map[string]string
}

// NewEngine creates a rendering engine with an empty cache.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]string)}
}

// Invalidate drops all cached template and partial contents.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]string)
}

// cachedTemplate returns the bundle's main template through the cache.
// Concurrent first loads of the same key may race; the value is idempotent
// so the duplicate read is harmless.
func (e *Engine) cachedTemplate(b *bundle.Bundle) (string, bool, error) {
	key := b.Root + "|" + b.TemplateFile()

	e.mu.RLock()
	content, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return content, true, nil
	}

	content, found, err := b.Template()
	if err != nil || !found {
		return "", found, err
	}

	e.mu.Lock()
	e.cache[key] = content
	e.mu.Unlock()
	return content, true, nil
}

// cachedPartial returns a bundle partial through the cache.
func (e *Engine) cachedPartial(b *bundle.Bundle, name string) (string, error) {
	key := b.Root + "|partial|" + name

	e.mu.RLock()
	content, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return content, nil
	}

	content, err := b.Partial(name)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	e.cache[key] = content
	e.mu.Unlock()
	return content, nil
}

// Render composes the bundle's main template with the given context. An
// absent main template yields ("", nil); callers decide whether to skip.
func (e *Engine) Render(ctx context.Context, b *bundle.Bundle, rc Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, ok, err := e.cachedTemplate(b)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	tmplPath := b.TemplateFile()

	tmpl, err := template.New(b.Name).Funcs(e.funcs(b, rc)).Parse(text)
	if err != nil {
		return "", errors.NewRenderError(err.Error(), tmplPath, templateErrorLine(err))
	}

	var buf bytes.Buffer
	data := templateData{
		Name:      rc.ComponentName,
		Kind:      string(rc.Kind),
		Provider:  rc.ProviderName,
		Arguments: rc.Arguments,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.NewRenderError(err.Error(), tmplPath, templateErrorLine(err))
	}

	return e.applyGlobalPartials(buf.String(), rc)
}

// Job pairs a bundle with its render context for batch rendering.
type Job struct {
	Bundle  *bundle.Bundle
	Context Context
}

// RenderBatch renders jobs concurrently. Outputs correspond positionally to
// inputs regardless of completion order; a failure in any job aborts the
// whole batch.
func (e *Engine) RenderBatch(ctx context.Context, jobs []Job) ([]string, error) {
	results := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			out, err := e.Render(gctx, job.Bundle, job.Context)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", job.Bundle.Name, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// funcs builds the composition primitives exposed to template authors.
func (e *Engine) funcs(b *bundle.Bundle, rc Context) template.FuncMap {
	return template.FuncMap{
		// example returns the named example fenced as terraform code, or
		// an HTML-comment debug note when the key is absent.
		"example": func(key string) string {
			src, ok := rc.Examples[key]
			if !ok {
				return fmt.Sprintf("<!-- example %q not found -->", key)
			}
			return fmt.Sprintf("```terraform\n%s```\n", ensureTrailingNewline(src))
		},

		// schema injects the pre-rendered schema markdown.
		"schema": func() string {
			return rc.SchemaMarkdown
		},

		// partial includes a fragment from the bundle's docs directory.
		"partial": func(name string) (string, error) {
			return e.cachedPartial(b, name)
		},
	}
}

// Global partial file names inside the configured global partials dir.
const (
	GlobalHeaderFile = "_header.md"
	GlobalFooterFile = "_footer.md"
)

// applyGlobalPartials applies the global header/footer policy to rendered
// output. Frontmatter flags skip_global_header and skip_global_footer opt a
// document out independently; frontmatter itself is never touched.
func (e *Engine) applyGlobalPartials(doc string, rc Context) (string, error) {
	if rc.GlobalPartialsDir == "" {
		return doc, nil
	}

	fm := bundle.ParseFrontmatter(doc)
	body := fm.Body
	if !fm.Present {
		body = doc
	}

	if !fm.BoolFlag("skip_global_header") {
		header, ok, err := readGlobalPartial(rc.GlobalPartialsDir, GlobalHeaderFile)
		if err != nil {
			return "", err
		}
		if ok {
			body = injectHeader(body, header)
		}
	}

	if !fm.BoolFlag("skip_global_footer") {
		footer, ok, err := readGlobalPartial(rc.GlobalPartialsDir, GlobalFooterFile)
		if err != nil {
			return "", err
		}
		if ok {
			body = appendFooter(body, footer)
		}
	}

	if !fm.Present {
		return body, nil
	}
	// An empty block reconstructs without a blank line between delimiters.
	prefix := bundle.Delimiter + "\n"
	if fm.Raw != "" {
		prefix += fm.Raw + "\n"
	}
	return prefix + bundle.Delimiter + "\n" + body, nil
}

// injectHeader places the header after the first H1 and its immediately
// following description paragraph, or directly after the H1 when no
// description line follows. Lines inside fenced code blocks never count as
// headings: a `# comment` in a fence is code, not structure.
func injectHeader(body, header string) string {
	lines := strings.Split(body, "\n")

	h1 := -1
	inFence := false
	for i, line := range lines {
		if isFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			h1 = i
			break
		}
	}
	if h1 < 0 {
		// No heading: header leads the document.
		return ensureTrailingNewline(header) + body
	}

	insert := h1 + 1
	// Skip blank lines after the heading.
	for insert < len(lines) && strings.TrimSpace(lines[insert]) == "" {
		insert++
	}
	// A description paragraph is plain prose: not another heading, list,
	// or fence. Consume it through its last non-blank line.
	if insert < len(lines) && isProse(lines[insert]) {
		for insert < len(lines) && strings.TrimSpace(lines[insert]) != "" {
			insert++
		}
	} else {
		insert = h1 + 1
	}

	var out []string
	out = append(out, lines[:insert]...)
	out = append(out, "", strings.TrimRight(header, "\n"))
	out = append(out, lines[insert:]...)
	return strings.Join(out, "\n")
}

// isFenceDelimiter reports whether a line opens or closes a fenced code
// block.
func isFenceDelimiter(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// isProse reports whether a line looks like description text rather than
// markdown structure.
func isProse(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '#', '-', '*', '>', '`', '|':
		return false
	}
	return true
}

// appendFooter appends the footer at the end of the body.
func appendFooter(body, footer string) string {
	return ensureTrailingNewline(body) + "\n" + ensureTrailingNewline(footer)
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// templateErrorLine extracts the line number from a text/template error
// message when present ("template: name:LINE: ...").
var templateErrorPattern = regexp.MustCompile(`template: [^:]*:(\d+)`)

func templateErrorLine(err error) int {
	m := templateErrorPattern.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}

// readGlobalPartial loads a global partial file; absence is not an error.
func readGlobalPartial(dir, name string) (string, bool, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.NewIOError("read", path, err)
	}
	return string(data), true, nil
}
