// SPDX-License-Identifier: MIT

// Command matcalc evaluates dense matrix operations from the command line.
//
//	matcalc det a.yaml --verify
//	matcalc mul a.yaml b.json -o json -p 4
//	cat a.yaml | matcalc inverse -
//
// All functionality lives in internal/cli.
package main

import (
	"github.com/katalvlaran/matrixplus/internal/cli"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
