// greplite - Pattern Search Tool
//
// greplite searches files, directories, or standard input for lines matching
// a regular expression, with context windows, counting, and highlighting.
package main

import (
	"os"

	"greplite/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
