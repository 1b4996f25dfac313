package dashlangerr

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gab1618/dashlang-sub000/ast"
)

var (
	locationColor = color.New(color.FgRed, color.Bold)
	hintColor     = color.New(color.FgCyan)
	rulerColor    = color.New(color.FgYellow)
)

// lineAndColumn translates an absolute byte offset into a 1-indexed
// (line, column) pair plus the text of that line, by scanning src once.
func lineAndColumn(src string, offset int) (line, column int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(src)
	if idx := strings.IndexByte(src[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	column = offset - lineStart + 1
	return line, column, src[lineStart:lineEnd]
}

// Render formats err against the original source src: the offending
// line, a caret underline spanning the error's location, and a per-kind
// hint. It accepts *ParsingError, *RuntimeError, or any other error (which
// is rendered with no location/hint).
func Render(src string, err error) string {
	var b strings.Builder
	switch e := err.(type) {
	case *ParsingError:
		renderLocated(&b, src, e.Location, e.Error(), e.Hint())
	case *RuntimeError:
		if e.Location != nil {
			renderLocated(&b, src, *e.Location, e.Error(), e.Kind.Hint())
		} else {
			fmt.Fprintln(&b, locationColor.Sprint(e.Error()))
			fmt.Fprintln(&b, hintColor.Sprint("hint: "+e.Kind.Hint()))
		}
	default:
		fmt.Fprintln(&b, locationColor.Sprint(err.Error()))
	}
	return b.String()
}

func renderLocated(b *strings.Builder, src string, loc ast.Location, message, hint string) {
	line, col, lineText := lineAndColumn(src, loc.Start)
	span := loc.End - loc.Start
	if span < 1 {
		span = 1
	}
	fmt.Fprintf(b, "%s\n", locationColor.Sprintf("%s (line %d, column %d)", message, line, col))
	fmt.Fprintf(b, "  %s\n", lineText)
	underline := strings.Repeat(" ", col-1) + strings.Repeat("^", span)
	fmt.Fprintf(b, "  %s\n", rulerColor.Sprint(underline))
	fmt.Fprintf(b, "%s\n", hintColor.Sprint("hint: "+hint))
}
