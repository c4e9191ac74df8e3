package gocalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocalc "github.com/njchilds90/gocalc"
)

func diffSimp(e gocalc.Expr, sym *gocalc.Symbol) string {
	return gocalc.Simplify(gocalc.Differentiate(e, sym)).String()
}

// ============================================================
// Base cases
// ============================================================

func TestDifferentiate_Constant(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "0", diffSimp(gocalc.Int(5), x))
}

func TestDifferentiate_Variable(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "1", diffSimp(x, x))
}

func TestDifferentiate_ForeignVariable(t *testing.T) {
	x, y := gocalc.Var("x"), gocalc.Var("y")
	assert.Equal(t, "0", diffSimp(y, x))
}

// ============================================================
// Structural rules
// ============================================================

func TestDifferentiate_Polynomial(t *testing.T) {
	x := gocalc.Var("x")
	// x^2 - 4x + 4
	quad := gocalc.NewAdd(
		gocalc.NewPow(x, gocalc.Int(2)),
		gocalc.NewMul(gocalc.Int(-4), x),
		gocalc.Int(4),
	)
	assert.Equal(t, "2*x + -4", diffSimp(quad, x))
}

func TestDifferentiate_PowerRule(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "4*x^3", diffSimp(gocalc.NewPow(x, gocalc.Int(4)), x))
	assert.Equal(t, "-1*x^(-2)", diffSimp(gocalc.NewPow(x, gocalc.Int(-1)), x))
}

func TestDifferentiate_ExponentialBase(t *testing.T) {
	x := gocalc.Var("x")
	// d/dx 2^x = 2^x·ln(2)
	got := diffSimp(gocalc.NewPow(gocalc.Int(2), x), x)
	assert.Equal(t, "2^x*ln(2)", got)
}

func TestDifferentiate_ProductRule(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewMul(x, gocalc.Sin(x))
	assert.Equal(t, "cos(x)*x + sin(x)", diffSimp(e, x))
}

func TestDifferentiate_PartialTreatsOtherSymbolsAsConstants(t *testing.T) {
	x, y := gocalc.Var("x"), gocalc.Var("y")
	e := gocalc.NewMul(y, gocalc.Sin(x))
	assert.Equal(t, "cos(x)*y", diffSimp(e, x))
}

// ============================================================
// Registry dispatch
// ============================================================

func TestDifferentiate_RegisteredFunctions(t *testing.T) {
	x := gocalc.Var("x")
	cases := map[string]gocalc.Expr{
		"cos(x)":           gocalc.Sin(x),
		"-1*sin(x)":        gocalc.Cos(x),
		"sec(x)^2":         gocalc.Tan(x),
		"exp(x)":           gocalc.Exp(x),
		"x^(-1)":           gocalc.Ln(x),
		"cosh(x)":          gocalc.Sinh(x),
		"sinh(x)":          gocalc.Cosh(x),
		"sech(x)^2":        gocalc.Tanh(x),
		"(x^2 + 1)^(-1)":   gocalc.Atan(x),
		"sign(x)":          gocalc.Abs(x),
		"sec(x)*tan(x)":    gocalc.Sec(x),
	}
	for want, e := range cases {
		assert.Equal(t, want, diffSimp(e, x), e.String())
	}
}

func TestDifferentiate_ChainRule(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.Sin(gocalc.NewPow(x, gocalc.Int(2)))
	assert.Equal(t, "2*cos(x^2)*x", diffSimp(e, x))
}

func TestDifferentiate_QuotientRuleCot(t *testing.T) {
	x := gocalc.Var("x")
	// cot is stored as the structural quotient cos/sin; the expanded rule
	// must collapse to -csc^2.
	assert.Equal(t, "-1*csc(x)^2", diffSimp(gocalc.Cot(x), x))
}

func TestDifferentiate_SpecialFunctions(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "sin(x)*x^(-1)", diffSimp(gocalc.NewFunction("Si", x), x))
	assert.Equal(t, "exp(x)*x^(-1)", diffSimp(gocalc.NewFunction("Ei", x), x))
}

// ============================================================
// Totality
// ============================================================

func TestDifferentiate_UnknownFunctionStaysWrapped(t *testing.T) {
	x := gocalc.Var("x")
	result := gocalc.Differentiate(gocalc.NewFunction("mystery", x), x)
	d, ok := result.(*gocalc.Derivative)
	require.True(t, ok)
	assert.Equal(t, "derivative(mystery(x), x)", d.String())
}

func TestDifferentiate_FunctionWithoutRuleStaysWrapped(t *testing.T) {
	x := gocalc.Var("x")
	result := gocalc.Differentiate(gocalc.NewFunction("floor", x), x)
	_, ok := result.(*gocalc.Derivative)
	assert.True(t, ok)
}

func TestDifferentiate_MultiArgFunctionStaysWrapped(t *testing.T) {
	x, y := gocalc.Var("x"), gocalc.Var("y")
	result := gocalc.Differentiate(gocalc.NewFunction("f", x, y), x)
	_, ok := result.(*gocalc.Derivative)
	assert.True(t, ok)
}

func TestDifferentiate_WrappedTermInsideSum(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewAdd(gocalc.Sin(x), gocalc.NewFunction("mystery", x))
	got := gocalc.Simplify(gocalc.Differentiate(e, x)).String()
	assert.Equal(t, "cos(x) + derivative(mystery(x), x)", got)
}

// ============================================================
// Fundamental theorem and noncommutative order
// ============================================================

func TestDifferentiate_UnevaluatedIntegralSameVariable(t *testing.T) {
	x := gocalc.Var("x")
	f := gocalc.NewFunction("mystery", x)
	result := gocalc.Differentiate(gocalc.NewIntegral(f, x), x)
	assert.True(t, result.Equal(f))
}

func TestDifferentiate_UnevaluatedIntegralOtherVariable(t *testing.T) {
	x, y := gocalc.Var("x"), gocalc.Var("y")
	in := gocalc.NewIntegral(gocalc.NewFunction("mystery", x), x)
	result := gocalc.Differentiate(in, y)
	_, ok := result.(*gocalc.Derivative)
	assert.True(t, ok)
}

func TestDifferentiate_ProductRulePreservesMatrixOrder(t *testing.T) {
	x := gocalc.Var("x")
	a := gocalc.TypedVar("A", gocalc.Matrix)
	b := gocalc.TypedVar("B", gocalc.Matrix)
	// d/dx (A·x·B) = A·1·B, with A and B kept in their slots.
	e := gocalc.NewMul(a, x, b)
	assert.Equal(t, "A*B", diffSimp(e, x))
}
