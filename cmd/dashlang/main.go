/*
File : dashlang/cmd/dashlang/main.go

Package main is the entry point for the Dashlang interpreter, grounded in
the teacher's main/main.go mode-dispatch shape: a banner/version/prompt
set of package vars, `--help`/`--version` flags, file mode, and REPL
fallback with no arguments. The teacher's TCP `server` mode has no
Dashlang counterpart (the expanded spec scopes networking out of the
core's concerns, see DESIGN.md) and is not carried over.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/gab1618/dashlang-sub000/dashlang"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/parser"
	"github.com/gab1618/dashlang-sub000/repl"
	"github.com/gab1618/dashlang-sub000/std"
)

var (
	version = "v0.1.0"
	author  = "dashlang contributors"
	license = "MIT"
	prompt  = "dash >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
  ____            _     _
 |  _ \  __ _ ___| |__ | | __ _ _ __   __ _
 | | | |/ _` + "`" + ` / __| '_ \| |/ _` + "`" + ` | '_ \ / _` + "`" + ` |
 | |_| | (_| \__ \ | | | | (_| | | | | (_| |
 |____/ \__,_|___/_| |_|_|\__,_|_| |_|\__, |
                                       |___/
`
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(os.Args[1])
			return
		}
	}
	repl.New(banner, version, author, line, license, prompt).Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Dashlang - a small dynamically-typed scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  dashlang                    Start interactive REPL mode")
	yellowColor.Println("  dashlang <path-to-file>     Execute a Dashlang file")
	yellowColor.Println("  dashlang --help             Display this help message")
	yellowColor.Println("  dashlang --version          Display version information")
}

func showVersion() {
	cyanColor.Printf("Dashlang %s (license: %s, %s)\n", version, license, author)
}

// runFile reads, parses and runs a single Dashlang source file, printing
// a colored diagnostic and exiting 1 on any parse or runtime error, and
// exiting 0 on success (§1: a one-shot driver, not part of the core).
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		redColor.Fprint(os.Stderr, dashlangerr.Render(string(source), err))
		os.Exit(1)
	}

	ctx := dashlang.NewContext()
	ctx.UsePlugin(std.Plugin())
	if _, err := ctx.Run(program); err != nil {
		redColor.Fprint(os.Stderr, dashlangerr.Render(string(source), err))
		os.Exit(1)
	}
}
