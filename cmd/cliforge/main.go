// Command cliforge manages layered project properties and expands project
// templates.
package main

import (
	"os"

	"github.com/randalmurphal/cliforge/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
