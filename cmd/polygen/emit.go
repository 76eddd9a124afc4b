package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// bankDegrees lists the generated evaluators: every degree the dispatch
// driver can select directly, plus the degree-31 reference used to
// sanity-check the pairing rule at a deeper tree.
var bankDegrees = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 31}

// emitBank renders the evaluator bank source and formats it. The
// filename is passed to the formatter for import resolution only; no
// file is read or written here.
func emitBank(pkg, filename string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by polygen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for _, deg := range bankDegrees {
		buf.WriteString("\n")
		emitPoly(&buf, deg)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// emitPoly writes one fixed-degree evaluator. The coefficient count is
// deg+1; the parameter list carries x and every squared power up to the
// largest split the pairing tree performs.
func emitPoly(buf *bytes.Buffer, deg int) {
	count := deg + 1

	var powers []string
	for p := 1; p*2 < count; p *= 2 {
		powers = append(powers, powName(p*2))
	}
	params := "x T"
	if len(powers) > 0 {
		params = "x, " + strings.Join(powers, ", ") + " T"
	}

	coeffs := make([]string, count)
	for i := range coeffs {
		coeffs[i] = fmt.Sprintf("c%d", i)
	}

	fmt.Fprintf(buf, "// Poly%d evaluates a degree-%d polynomial (%d coefficients) using Estrin's\n", deg, deg, count)
	fmt.Fprintf(buf, "// scheme over precomputed powers of x.\n")
	fmt.Fprintf(buf, "func Poly%d[T Floats](%s, %s T) T {\n", deg, params, strings.Join(coeffs, ", "))
	fmt.Fprintf(buf, "\treturn %s\n", estrinExpr(0, count))
	fmt.Fprintf(buf, "}\n")
}

// estrinExpr renders the pairing tree for coefficients [lo, hi): split
// at the largest power of two below the count, evaluate both halves
// independently, and join them with fma on the split power of x.
func estrinExpr(lo, hi int) string {
	n := hi - lo
	if n == 1 {
		return fmt.Sprintf("c%d", lo)
	}
	p := 1
	for p*2 < n {
		p *= 2
	}
	if p == 1 {
		return fmt.Sprintf("fma(x, c%d, c%d)", lo+1, lo)
	}
	return fmt.Sprintf("fma(%s, %s, %s)", powName(p), estrinExpr(lo+p, hi), estrinExpr(lo, lo+p))
}

func powName(p int) string {
	return fmt.Sprintf("x%d", p)
}
