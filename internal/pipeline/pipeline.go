// Package pipeline wires the stages that turn a MyJS source file into the
// three fixed output files: grammar load -> FIRST/FOLLOW/table build -> lex
// -> analyze -> emit.
//
// Grounded on tunascript/parser.go's LL1PredictiveParse, which builds its
// table via g.LLParseTable() and then drives the parse against it in the
// same call; generalized here into a file-to-file pipeline (read source,
// derive grammar artifacts, lex, parse, produce output) with MyJS's
// three-artifact emission and non-fatal-lexical/fatal-syntactic error
// split.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"myjsc/internal/analyzer"
	"myjsc/internal/emit"
	"myjsc/internal/grammar"
	"myjsc/internal/lexer"
	"myjsc/internal/ll1"
	"myjsc/internal/report"
	"myjsc/internal/symtab"
)

// Result is the outcome of running the pipeline over one source file.
type Result struct {
	Errors *report.ErrorList
	Wrote  []string // output file paths actually written
}

// Run reads sourcePath, checks it against the grammar at grammarPath, and
// writes lexed.txt, symbols.txt and parse.txt into outDir.
//
// lexed.txt and symbols.txt are always written, with no condition placed on
// them. parse.txt is written only if there were zero lexical
// and zero syntactic errors, since a rejected or ill-lexed program has no
// trustworthy derivation to report.
func Run(sourcePath, grammarPath, outDir string) (*Result, error) {
	g, err := grammar.Load(grammarPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load grammar %q: %w", grammarPath, err)
	}

	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)
	table, err := ll1.BuildTable(g, first, follow)
	if err != nil {
		return nil, fmt.Errorf("failed to build LL(1) table: %w", err)
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %q: %w", sourcePath, err)
	}

	errs := report.NewErrorList()
	syms := symtab.New()

	lx := lexer.New(string(source), syms, errs)
	tokens := lx.Tokenize()

	ctx := analyzer.New(g, table, tokens, syms, errs)
	ctx.Analyze()

	res := &Result{Errors: errs}

	if err := writeFile(outDir, "lexed.txt", &res.Wrote, func(w *os.File) error {
		return emit.Lexed(w, tokens)
	}); err != nil {
		return res, err
	}

	if err := writeFile(outDir, "symbols.txt", &res.Wrote, func(w *os.File) error {
		return emit.Symbols(w, syms)
	}); err != nil {
		return res, err
	}

	if errs.Count(report.PhaseLexical) == 0 && errs.Count(report.PhaseSyntactic) == 0 {
		if err := writeFile(outDir, "parse.txt", &res.Wrote, func(w *os.File) error {
			return emit.Parse(w, ctx.Derivation())
		}); err != nil {
			return res, err
		}
	}

	return res, nil
}

func writeFile(dir, name string, wrote *[]string, fn func(*os.File) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	*wrote = append(*wrote, path)
	return nil
}
