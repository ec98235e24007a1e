// Package scaffold expands zip archives of file templates into a directory.
//
// Archives live under the installation home:
//
//	<home>/template/<type>/<name>.zip
//
// Every entry name has its ${NAME} placeholders injected from the variables
// passed to Expand. Then:
//   - names ending in "/" become directories
//   - names whose last segment ends in ".tmpl" are rendered, and the suffix
//     is dropped from the output path
//   - everything else is copied byte for byte
//
// Example usage:
//
//	e := &scaffold.Expander{TargetDir: ".", Verbose: true, Printer: console.Std()}
//	err := e.Exec(home, "site", "blog", map[string]string{"name": "fables"})
//
// The default renderer is text/template. Dotted property names are reached
// with the prop function, plain names directly:
//
//	# {{.name}} by {{prop "user.name"}}
package scaffold
