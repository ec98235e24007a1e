// Package cliforge provides the building blocks of a project-oriented command
// line tool.
//
// The package is organized into subpackages by concern:
//
//   - config: Layered project and global properties, descriptor import
//   - vars: ${NAME} placeholder injection
//   - console: Line-oriented prompts, messages and the slog logger
//   - errors: Error kinds shared by every package
//   - task: Exit codes and the runner that reports task failures
//   - scaffold: Template archive expansion
//   - cli: The cobra command tree wiring the packages together
//   - testutil: Test utilities and fixtures
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/cliforge/config"
//	    "github.com/randalmurphal/cliforge/scaffold"
//	)
//
//	// Load project, descriptor and global properties
//	store, _ := config.Load(config.Options{Home: home})
//
//	// Expand <home>/template/project/blog.zip
//	exp := &scaffold.Expander{TargetDir: "."}
//	err := exp.Exec(home, "project", "blog", store.Variables())
//
// See individual package documentation for detailed usage.
package cliforge
