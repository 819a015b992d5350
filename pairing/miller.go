// Package pairing implements the BN254 optimal ate pairing: the Miller loop
// over a D-type sextic twist followed by the final exponentiation, used by
// the verifier package to evaluate the Groth16 pairing product check.
package pairing

import (
	"math/big"

	"github.com/openzktool/groth16bn254/field"
)

// bn254U is the BN254 curve parameter; p, r and the ate loop count are all
// fixed polynomials in u.
var bn254U, _ = new(big.Int).SetString("4965661367192848881", 10)

// sixuPlus2NAF is the non-adjacent form of 6u+2, least-significant digit
// first. The Miller loop iterates over it from the top down.
var sixuPlus2NAF = []int8{
	0, 0, 0, 1, 0, 1, 0, -1, 0, 0, 1, -1, 0, 0, 1, 0,
	0, 1, 1, 0, -1, 0, 0, 1, 0, -1, 0, 0, 0, 0, 1, 1,
	1, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 1,
	1, 0, 0, -1, 0, 0, 0, 1, 1, 0, -1, 0, 0, 1, 0, 1, 1,
}

// twistPoint is a G2 point in Jacobian coordinates (x/z^2, y/z^3), used
// internally by the Miller loop so the per-step doubling and addition never
// need a field inversion. t always caches z^2.
type twistPoint struct {
	x, y, z, t field.Fq2
}

func newTwistPointFromAffine(x, y field.Fq2) twistPoint {
	return twistPoint{x: x, y: y, z: field.Fq2One(), t: field.Fq2One()}
}

// lineFunctionDouble computes the tangent line at r, advances r to 2r, and
// returns the line's evaluation coefficients (a, b, c) in the sparse form
// c + (b + a*v)*w, evaluated at the G1 point (gx, gy).
//
// This follows the doubling step of "Faster Computation of the Tate Pairing"
// specialized to curves with a=0, the same formulas the cloudflare/bn256
// Miller loop uses for alt_bn128.
func lineFunctionDouble(r twistPoint, gx, gy field.Fq) (a, b, c field.Fq2, next twistPoint) {
	A := r.x.Square()
	B := r.y.Square()
	C := B.Square()

	D := r.x.Add(B)
	D = D.Square()
	D = D.Sub(A).Sub(C)
	D = D.Add(D)

	E := A.Add(A).Add(A)
	G := E.Square()

	nx := G.Sub(D).Sub(D)

	nz := r.y.Add(r.z)
	nz = nz.Square().Sub(B).Sub(r.t)

	ny := D.Sub(nx).Mul(E)
	fourC := C.Add(C).Add(C).Add(C)
	ny = ny.Sub(fourC.Add(fourC))

	nt := nz.Square()

	t := E.Mul(r.t)
	t = t.Add(t)
	b = t.Neg().MulByFq(gx)

	a = r.x.Add(E).Square().Sub(A).Sub(G)
	fourB := B.Add(B).Add(B).Add(B)
	a = a.Sub(fourB)

	c = nz.Mul(r.t)
	c = c.Add(c).MulByFq(gy)

	next = twistPoint{x: nx, y: ny, z: nz, t: nt}
	return
}

// lineFunctionAdd computes the line through r and the affine twist point
// (px, py), advances r to r+(px,py), and returns the line's evaluation
// coefficients at the G1 point (gx, gy). pySquared is py^2, passed in
// because the caller already has it available.
func lineFunctionAdd(r twistPoint, px, py field.Fq2, gx, gy field.Fq, pySquared field.Fq2) (a, b, c field.Fq2, next twistPoint) {
	B := px.Mul(r.t)

	D := py.Add(r.z)
	D = D.Square().Sub(pySquared).Sub(r.t)
	D = D.Mul(r.t)

	H := B.Sub(r.x)
	I := H.Square()

	E := I.Add(I).Add(I).Add(I)
	J := H.Mul(E)

	L1 := D.Sub(r.y).Sub(r.y)

	V := r.x.Mul(E)

	nx := L1.Square().Sub(J).Sub(V.Add(V))

	nz := r.z.Add(H)
	nz = nz.Square().Sub(r.t).Sub(I)

	t := V.Sub(nx).Mul(L1)
	t2 := r.y.Mul(J)
	t2 = t2.Add(t2)
	ny := t.Sub(t2)

	nt := nz.Square()

	t = py.Add(nz)
	t = t.Square().Sub(pySquared).Sub(nt)

	t2 = L1.Mul(px)
	t2 = t2.Add(t2)
	a = t2.Sub(t)

	c = nz.MulByFq(gy)
	c = c.Add(c)

	b = L1.Neg().MulByFq(gx)
	b = b.Add(b)

	next = twistPoint{x: nx, y: ny, z: nz, t: nt}
	return
}

// mulSparse multiplies acc by the sparse line element c + (b + a*v)*w.
func mulSparse(acc field.Fq12, a, b, c field.Fq2) field.Fq12 {
	lineC1 := field.NewFq6(b, a, field.Fq2Zero())
	lineSum := field.NewFq6(b.Add(c), a, field.Fq2Zero())

	t1 := lineC1.Mul(acc.C1)
	t2 := acc.C0.MulByFq2(c)

	sum := acc.C1.Add(acc.C0).Mul(lineSum)
	newC1 := sum.Sub(t1).Sub(t2)
	newC0 := field.MulByV(t1).Add(t2)

	return field.NewFq12(newC0, newC1)
}

// g2FrobeniusTwistX, g2FrobeniusTwistY are the degree-1 Frobenius twist
// factors applied directly to a G2 affine coordinate (as opposed to a full
// Fq12 element): xi^((p-1)/3) for x, xi^((p-1)/2) for y.
var (
	g2FrobeniusTwistX = mustFq2Const(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954",
	)
	g2FrobeniusTwistY = mustFq2Const(
		"2821565182194536844548159561693502659359617185244120367078079554186484126554",
		"3505843767911556378687030309984248845540243509899259641013678093033130930403",
	)
	// g2FrobeniusSqTwistX is the real (Fq-valued) p^2 twist factor for x,
	// used by the Miller loop's final -Q2 correction step.
	g2FrobeniusSqTwistX = mustFq2Const(
		"21888242871839275220042445260109153167277707414472061641714758635765020556616",
		"0",
	)
)

func mustFq2Const(a0, a1 string) field.Fq2 {
	x0, ok0 := new(big.Int).SetString(a0, 10)
	x1, ok1 := new(big.Int).SetString(a1, 10)
	if !ok0 || !ok1 {
		panic("pairing: invalid Fq2 constant literal")
	}
	return field.NewFq2(field.FromBigInt(x0), field.FromBigInt(x1))
}

// g2Frobenius applies the degree-1 Frobenius endomorphism directly to a G2
// affine point's coordinates (qx, qy) -> (qx,qy)^p, giving another point on
// the twist curve (Q1 in the Miller loop's final two correction steps).
func g2Frobenius(qx, qy field.Fq2) (field.Fq2, field.Fq2) {
	return qx.Conjugate().Mul(g2FrobeniusTwistX), qy.Conjugate().Mul(g2FrobeniusTwistY)
}

// millerLoop evaluates the Miller function f_{6u+2,Q}(P) for the BN254
// optimal ate pairing, where P=(gx,gy) in G1 and Q=(qx,qy) in the G2 twist.
func millerLoop(gx, gy field.Fq, qx, qy field.Fq2) field.Fq12 {
	acc := field.Fq12One()
	r := newTwistPointFromAffine(qx, qy)

	minusQy := qy.Neg()
	qySquared := qy.Square()

	for i := len(sixuPlus2NAF) - 1; i > 0; i-- {
		var a, b, c field.Fq2
		a, b, c, r = lineFunctionDouble(r, gx, gy)
		if i != len(sixuPlus2NAF)-1 {
			acc = acc.Square()
		}
		acc = mulSparse(acc, a, b, c)

		switch sixuPlus2NAF[i-1] {
		case 1:
			a, b, c, r = lineFunctionAdd(r, qx, qy, gx, gy, qySquared)
			acc = mulSparse(acc, a, b, c)
		case -1:
			a, b, c, r = lineFunctionAdd(r, qx, minusQy, gx, gy, qySquared)
			acc = mulSparse(acc, a, b, c)
		}
	}

	// Two correction steps account for the sign of u in 6u+2: add the
	// Frobenius twist of Q, then add the negated p^2-Frobenius twist of Q.
	q1x, q1y := g2Frobenius(qx, qy)
	q1ySquared := q1y.Square()
	a, b, c, r2 := lineFunctionAdd(r, q1x, q1y, gx, gy, q1ySquared)
	acc = mulSparse(acc, a, b, c)
	r = r2

	minusQ2x := qx.Mul(g2FrobeniusSqTwistX)
	minusQ2y := qy
	minusQ2ySquared := minusQ2y.Square()
	a, b, c, _ = lineFunctionAdd(r, minusQ2x, minusQ2y, gx, gy, minusQ2ySquared)
	acc = mulSparse(acc, a, b, c)

	return acc
}
