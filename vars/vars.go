package vars

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// placeholder matches ${NAME}. Names may not contain a closing brace.
var placeholder = regexp.MustCompile(`\$\{([^{}]+)\}`)

// Lookup resolves a variable name to its value.
type Lookup func(name string) (string, bool)

// Env returns a Lookup backed by the process environment.
func Env() Lookup {
	return os.LookupEnv
}

// Map returns a Lookup backed by m. A nil map resolves nothing.
func Map(m map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// Chain returns a Lookup that tries each lookup in order and returns the
// first hit. Nil lookups are skipped.
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Expand replaces every resolvable ${NAME} in s. Placeholders that do not
// resolve are left as they are.
func Expand(s string, lookup Lookup) string {
	if lookup == nil {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := lookup(name); ok {
			return v
		}
		return match
	})
}

// UnresolvedError reports the placeholders that ExpandStrict could not
// resolve. Name is the first of Names.
type UnresolvedError struct {
	Name  string
	Names []string
	Input string
}

func (e *UnresolvedError) Error() string {
	refs := make([]string, len(e.Names))
	for i, n := range e.Names {
		refs[i] = "${" + n + "}"
	}
	noun := "variable"
	if len(refs) > 1 {
		noun = "variables"
	}
	return fmt.Sprintf("unresolved %s %s in %q", noun, strings.Join(refs, ", "), e.Input)
}

// ExpandStrict is like Expand but fails when any placeholder does not
// resolve, naming all of them.
func ExpandStrict(s string, lookup Lookup) (string, error) {
	if lookup == nil {
		lookup = Map(nil)
	}
	var missing []string
	for _, name := range Names(s) {
		if _, ok := lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", &UnresolvedError{Name: missing[0], Names: missing, Input: s}
	}
	return Expand(s, lookup), nil
}

// Names returns the placeholder names referenced by s, in order of
// appearance and without duplicates.
func Names(s string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
