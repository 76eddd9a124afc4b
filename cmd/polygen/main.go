// Command polygen generates the fixed-degree Estrin evaluator bank.
//
// Usage:
//
//	polygen -output poly
//
// Or via go:generate from the poly package:
//
//	//go:generate go run github.com/ajroetker/go-estrin/cmd/polygen -output .
//
// The generator expands the Estrin pairing rule - pair adjacent
// coefficients with fma(x, c[2i+1], c[2i]), then combine subtrees
// separated by 2^m coefficients with fma(x^(2^m), high, low) - into one
// flat function per degree, so the hand-callable bank cannot drift from
// the recursion that defines it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "poly", "Output package name")
)

func main() {
	flag.Parse()

	path := filepath.Join(*outputDir, "estrin_base.go")
	src, err := emitBank(*packageOut, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", path)
}
