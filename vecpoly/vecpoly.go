// Package vecpoly evaluates one polynomial at a block of inputs
// simultaneously, using github.com/ajroetker/go-highway vectors.
//
// The evaluation structure is the same hybrid Estrin/Horner scheme as
// package poly, applied lane-wise: coefficients are broadcast across
// lanes and every multiply-add is a vector fused multiply-add. Use this
// when the same (often long) coefficient sequence is evaluated at many
// points, e.g. a minimax approximation applied to a whole buffer.
package vecpoly

import "github.com/ajroetker/go-highway/hwy"

// maxChunk matches poly.maxChunk: coefficients consumed per sweep step.
const maxChunk = 16

// Eval evaluates the polynomial with the given ascending-order
// coefficients at every input in xs, writing results to out. It
// processes min(len(xs), len(out)) inputs, one vector register at a
// time.
func Eval[T hwy.Floats](xs []T, coeffs []T, out []T) {
	size := min(len(xs), len(out))
	lanes := hwy.Zero[T]().NumLanes()
	for ii := 0; ii < size; ii += lanes {
		vx := hwy.LoadSlice(xs[ii:])
		hwy.StoreSlice(evalVec(vx, coeffs), out[ii:])
	}
}

// evalVec is the vector form of the scalar driver: fixed Estrin trees
// for n <= 16, hybrid sweep above.
func evalVec[T hwy.Floats](vx hwy.Vec[T], coeffs []T) hwy.Vec[T] {
	n := len(coeffs)
	switch n {
	case 0:
		return hwy.Zero[T]()
	case 1:
		return hwy.Set(coeffs[0])
	}

	// pows[k] holds x^(2^k), computed by repeated squaring.
	var pows [5]hwy.Vec[T]
	pows[0] = vx
	pows[1] = hwy.Mul(vx, vx)
	pows[2] = hwy.Mul(pows[1], pows[1])
	pows[3] = hwy.Mul(pows[2], pows[2])

	if n <= maxChunk {
		return estrinVec(pows[:], coeffs)
	}

	pows[4] = hwy.Mul(pows[3], pows[3])
	x16 := pows[4]

	sum := hwy.Zero[T]()
	j := n
	for j >= maxChunk {
		j -= maxChunk
		sum = hwy.MulAdd(sum, x16, estrinVec(pows[:], coeffs[j:j+maxChunk]))
	}
	if j == 0 {
		return sum
	}
	return hwy.MulAdd(sum, powVec(pows[:], j), estrinVec(pows[:], coeffs[:j]))
}

// estrinVec evaluates up to 16 broadcast coefficients at vx with the
// same pairing tree the scalar bank uses: split at the largest power of
// two below the coefficient count, combine with fma(x^split, high, low).
func estrinVec[T hwy.Floats](pows []hwy.Vec[T], coeffs []T) hwy.Vec[T] {
	n := len(coeffs)
	if n == 1 {
		return hwy.Set(coeffs[0])
	}
	p, k := 1, 0
	for p*2 < n {
		p *= 2
		k++
	}
	low := estrinVec(pows, coeffs[:p])
	high := estrinVec(pows, coeffs[p:])
	return hwy.MulAdd(pows[k], high, low)
}

// powVec assembles x^j (1 <= j <= 15) as a product of the cached
// squarings, walking the bits of j.
func powVec[T hwy.Floats](pows []hwy.Vec[T], j int) hwy.Vec[T] {
	k := 0
	for j&1 == 0 {
		j >>= 1
		k++
	}
	v := pows[k]
	for j >>= 1; j > 0; j >>= 1 {
		k++
		if j&1 == 1 {
			v = hwy.Mul(v, pows[k])
		}
	}
	return v
}
