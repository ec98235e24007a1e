// Package vars expands ${NAME} placeholders in strings.
//
// Placeholders are resolved through a Lookup, which is usually a chain of
// explicitly supplied variables followed by the process environment:
//
//	lookup := vars.Chain(vars.Map(map[string]string{"APP_HOME": home}), vars.Env())
//	dir := vars.Expand("${APP_HOME}/repository", lookup)
//
// Expand leaves unresolved placeholders untouched. ExpandStrict reports the
// first placeholder it cannot resolve.
package vars
