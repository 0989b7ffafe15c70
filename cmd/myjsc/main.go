// Command myjsc compiles a single MyJS source file, writing lexed.txt,
// symbols.txt and parse.txt next to it and printing a diagnostic summary.
//
// Grounded on gmofishsauce-y4/asm/asm.go's single-positional-argument CLI
// shape: no subcommands, a fixed usage message on arg-count mismatch, and
// the remaining argument treated as a bare source path.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"myjsc/internal/pipeline"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.myjs>\n", os.Args[0])
		os.Exit(1)
	}

	sourcePath := os.Args[1]
	execDir, err := os.Executable()
	grammarPath := "Gramatica.txt"
	if err == nil {
		sibling := filepath.Join(filepath.Dir(execDir), "Gramatica.txt")
		if _, statErr := os.Stat(sibling); statErr == nil {
			grammarPath = sibling
		}
	}

	outDir := filepath.Dir(sourcePath)
	result, err := pipeline.Run(sourcePath, grammarPath, outDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result.Errors.PrintSummary(os.Stdout)
	if result.Errors.HasErrors() {
		os.Exit(1)
	}
}
