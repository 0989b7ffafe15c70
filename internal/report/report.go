// Package report collects and prints MyJS's compile-time diagnostics:
// lexical, syntactic and semantic errors.
//
// The data model (Position, CompileError, ErrorList) is grounded on
// btouchard-gmx/internal/compiler/errors/errors.go; styled terminal output
// is grounded on npillmayer-gorgo's trepl/repl.go use of pterm.Info/
// pterm.Error with a custom Prefix.
package report

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Phase names a compiler stage an error was raised in.
type Phase string

const (
	PhaseLexical   Phase = "lexical"
	PhaseSyntactic Phase = "syntactic"
	PhaseSemantic  Phase = "semantic"
)

// Position is a 1-based source line. MyJS reports diagnostics by line only;
// lexed.txt and parse.txt carry no column.
type Position struct {
	Line uint32
}

func (p Position) String() string { return fmt.Sprintf("line %d", p.Line) }

// CompileError is one diagnostic.
type CompileError struct {
	Pos     Position
	Message string
	Phase   Phase
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Pos, e.Message)
}

// ErrorList accumulates diagnostics across phases, in the order they were
// raised.
type ErrorList struct {
	Errors []*CompileError
}

func NewErrorList() *ErrorList { return &ErrorList{} }

func (el *ErrorList) Add(phase Phase, line uint32, format string, args ...interface{}) {
	el.Errors = append(el.Errors, &CompileError{
		Pos:     Position{Line: line},
		Message: fmt.Sprintf(format, args...),
		Phase:   phase,
	})
}

func (el *ErrorList) HasErrors() bool { return len(el.Errors) > 0 }

func (el *ErrorList) Count(phase Phase) int {
	n := 0
	for _, e := range el.Errors {
		if e.Phase == phase {
			n++
		}
	}
	return n
}

var (
	infoPrefix = pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Text:  " INFO ",
			Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
		},
	}
	errorPrefix = pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Text:  " ERROR ",
			Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
		},
	}
)

// PrintSummary writes a one-line-per-error styled summary to out, plus a
// closing count, matching trepl/repl.go's pterm.Info/pterm.Error idiom.
func (el *ErrorList) PrintSummary(out io.Writer) {
	if !el.HasErrors() {
		infoPrefix.WithWriter(out).Println("compilation finished with no errors")
		return
	}
	for _, e := range el.Errors {
		errorPrefix.WithWriter(out).Println(e.Error())
	}
	infoPrefix.WithWriter(out).Printfln("%d error(s)", len(el.Errors))
}
