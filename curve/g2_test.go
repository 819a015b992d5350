package curve

import (
	"math/big"
	"testing"

	"github.com/openzktool/groth16bn254/field"
)

// fqSqrt returns a square root of z in Fq. BN254's base field modulus is
// 3 mod 4, so sqrt(z) = z^((p+1)/4) whenever z is a quadratic residue.
func fqSqrt(z field.Fq) field.Fq {
	exp := new(big.Int).Add(field.Modulus(), big.NewInt(1))
	exp.Rsh(exp, 2)
	return z.Pow(exp)
}

// fqIsSquare reports whether z is a quadratic residue in Fq via Euler's
// criterion.
func fqIsSquare(z field.Fq) bool {
	if z.IsZero() {
		return true
	}
	exp := new(big.Int).Sub(field.Modulus(), big.NewInt(1))
	exp.Rsh(exp, 1)
	return z.Pow(exp).Equal(field.One())
}

// fq2Sqrt returns a square root of z in Fq2 = Fq[u]/(u^2+1) via the standard
// complex-method construction for a 3-mod-4 base field, and false if z is
// not a square.
func fq2Sqrt(z field.Fq2) (field.Fq2, bool) {
	if z.C1.IsZero() {
		if fqIsSquare(z.C0) {
			return field.NewFq2(fqSqrt(z.C0), field.Zero()), true
		}
		return field.NewFq2(field.Zero(), fqSqrt(z.C0.Neg())), true
	}

	two := field.FromUint64(2)
	twoInv, _ := two.Inverse()
	norm := z.C0.Square().Add(z.C1.Square())
	if !fqIsSquare(norm) {
		return field.Fq2{}, false
	}
	delta := fqSqrt(norm)

	d := z.C0.Add(delta).Mul(twoInv)
	if !fqIsSquare(d) {
		d = delta.Neg().Add(z.C0).Mul(twoInv)
	}
	if !fqIsSquare(d) {
		return field.Fq2{}, false
	}
	x0 := fqSqrt(d)
	if x0.IsZero() {
		return field.Fq2{}, false
	}
	doubleX0Inv, err := x0.Mul(two).Inverse()
	if err != nil {
		return field.Fq2{}, false
	}
	x1 := z.C1.Mul(doubleX0Inv)
	return field.NewFq2(x0, x1), true
}

// offSubgroupG2Point constructs a point on the twist curve (y^2 = x^3 + b')
// at a small x value that is not the identity and not a scalar multiple of
// the r-order generator: the cofactor of BN254's G2 is astronomically
// larger than 1, so a generic on-curve point lies outside the r-torsion
// subgroup with overwhelming probability. It tries successive small x
// values until one yields a square right-hand side.
func offSubgroupG2Point(t *testing.T) G2Affine {
	t.Helper()
	for x := int64(2); x < 64; x++ {
		xFq2 := field.NewFq2(field.FromUint64(uint64(x)), field.Zero())
		rhs := xFq2.Square().Mul(xFq2).Add(g2B)
		y, ok := fq2Sqrt(rhs)
		if !ok {
			continue
		}
		return G2Affine{X: xFq2, Y: y}
	}
	t.Fatal("offSubgroupG2Point: no small x yielded a point on the curve")
	return G2Affine{}
}

func TestG2GeneratorOnCurve(t *testing.T) {
	g := G2Generator()
	if !g.IsOnCurve() {
		t.Errorf("G2 generator does not satisfy the twist curve equation")
	}
}

func TestG2GeneratorInSubgroup(t *testing.T) {
	g := G2Generator()
	if !g.IsInSubgroup() {
		t.Errorf("G2 generator must be in the r-torsion subgroup")
	}
}

func TestG2AddIdentity(t *testing.T) {
	g := G2Generator()
	if !g.Add(G2Identity()).Equal(g) {
		t.Errorf("g+0 != g")
	}
}

func TestG2DoubleMatchesAdd(t *testing.T) {
	g := G2Generator()
	if !g.Add(g).Equal(g.Double()) {
		t.Errorf("g+g != 2g")
	}
}

func TestG2AddNegIsIdentity(t *testing.T) {
	g := G2Generator()
	if !g.Add(g.Neg()).Equal(G2Identity()) {
		t.Errorf("g+(-g) != 0")
	}
}

func TestG2ScalarMulByOrderIsIdentity(t *testing.T) {
	g := G2Generator()
	if !g.ScalarMul(GroupOrder()).Equal(G2Identity()) {
		t.Errorf("[r]g != 0")
	}
}

func TestG2ScalarMulSmall(t *testing.T) {
	g := G2Generator()
	three := g.Add(g).Add(g)
	if !g.ScalarMul(big.NewInt(3)).Equal(three) {
		t.Errorf("[3]g != g+g+g")
	}
}

func TestG2PointNotOnCurveRejected(t *testing.T) {
	g := G2Generator()
	bad := G2Affine{X: g.X, Y: g.Y.Add(g.Y)}
	if bad.IsOnCurve() {
		t.Errorf("perturbed point should not satisfy the curve equation")
	}
}

// TestG2OffSubgroupPointRejected constructs a point that is on the twist
// curve but not in the r-torsion subgroup (G2's cofactor is not 1, unlike
// G1's) and confirms IsInSubgroup correctly distinguishes the two: being
// on-curve is necessary but not sufficient for membership.
func TestG2OffSubgroupPointRejected(t *testing.T) {
	p := offSubgroupG2Point(t)
	if !p.IsOnCurve() {
		t.Fatalf("constructed point does not satisfy the curve equation")
	}
	if p.IsInSubgroup() {
		t.Errorf("expected a generic on-curve point to lie outside the r-torsion subgroup")
	}
}

func TestG2FromBytesRejectsOffSubgroupPoint(t *testing.T) {
	p := offSubgroupG2Point(t)
	x0, x1 := p.X.C0.Bytes(), p.X.C1.Bytes()
	y0, y1 := p.Y.C0.Bytes(), p.Y.C1.Bytes()
	if _, err := G2FromBytes(x0, x1, y0, y1); err != ErrNotInSubgroup {
		t.Errorf("expected ErrNotInSubgroup, got %v", err)
	}
}
