package scaffold

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderFunc renders the template read from src into w.
type RenderFunc func(w io.Writer, name string, src io.Reader, variables map[string]string) error

// TextRenderer renders templates with text/template.
type TextRenderer struct {
	funcMap template.FuncMap
}

// NewTextRenderer creates a renderer with the default template functions.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{funcMap: defaultFuncMap()}
}

// AddFunc adds a custom template function.
func (r *TextRenderer) AddFunc(name string, fn any) {
	r.funcMap[name] = fn
}

// Render implements RenderFunc. Missing variables render as empty strings.
func (r *TextRenderer) Render(w io.Writer, name string, src io.Reader, variables map[string]string) error {
	content, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	funcs := make(template.FuncMap, len(r.funcMap)+1)
	for k, v := range r.funcMap {
		funcs[k] = v
	}
	funcs["prop"] = func(key string) string { return variables[key] }

	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=zero").Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	if err := tmpl.Execute(w, variables); err != nil {
		return fmt.Errorf("render template %s: %w", name, err)
	}
	return nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"join":     strings.Join,
		"split":    strings.Split,
		"trim":     strings.TrimSpace,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"title":    cases.Title(language.English).String,
		"contains": strings.Contains,
		"replace":  strings.ReplaceAll,
		"indent":   indentString,
		"default":  defaultValue,
		"quote":    quoteString,
		// prop is bound per render
		"prop": func(string) string { return "" },
	}
}

// indentString indents all lines of a string.
func indentString(indent int, s string) string {
	if s == "" {
		return s
	}
	prefix := strings.Repeat(" ", indent)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// defaultValue returns the default if value is empty.
func defaultValue(defaultVal, value any) any {
	if value == nil {
		return defaultVal
	}
	if s, ok := value.(string); ok && s == "" {
		return defaultVal
	}
	return value
}

func quoteString(s string) string {
	return fmt.Sprintf("%q", s)
}
