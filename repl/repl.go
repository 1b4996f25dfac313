/*
File : dashlang/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop: line
editing and history via chzyer/readline, colored feedback via
fatih/color, ported from the teacher's repl/repl.go loop shape (banner,
prompt, `.exit`, panic recovery around each line) but driving the
dashlang.Context/parser.Parse pipeline instead of the teacher's own
evaluator.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gab1618/dashlang-sub000/dashlang"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/parser"
	"github.com/gab1618/dashlang-sub000/std"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation strings shown at startup, mirroring the
// teacher's Repl struct.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given presentation strings.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Welcome to Dashlang!")
	cyanColor.Fprintln(w, "Type your code and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop against writer, reading lines from readline (which
// owns its own terminal handle; Start takes no reader). A single Context
// persists across lines, so variables and closures defined on one line
// are visible on the next, exactly like running the accumulated source
// as one program.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: writer})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	ctx := dashlang.NewContext()
	ctx.UsePlugin(std.Plugin())
	ctx.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.evalLine(writer, ctx, line)
	}
}

// evalLine parses and runs a single line against ctx, rendering any
// parse or runtime error in red and continuing the loop either way —
// unlike file mode, a REPL error must never end the session.
func (r *Repl) evalLine(writer io.Writer, ctx *dashlang.Context, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	program, err := parser.Parse(line)
	if err != nil {
		redColor.Fprint(writer, dashlangerr.Render(line, err))
		return
	}

	value, err := ctx.Run(program)
	if err != nil {
		redColor.Fprint(writer, dashlangerr.Render(line, err))
		return
	}

	s, err := std.Display(ctx, value)
	if err != nil {
		redColor.Fprint(writer, dashlangerr.Render(line, err))
		return
	}
	yellowColor.Fprintln(writer, s)
}
