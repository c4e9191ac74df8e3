package gocalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocalc "github.com/njchilds90/gocalc"
)

func integSimp(e gocalc.Expr, sym *gocalc.Symbol) string {
	return gocalc.Simplify(gocalc.Integrate(e, sym)).String()
}

// ============================================================
// Constant and power rules
// ============================================================

func TestIntegrate_Constant(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "5*x", integSimp(gocalc.Int(5), x))
}

func TestIntegrate_ForeignSymbolIsConstant(t *testing.T) {
	x, y := gocalc.Var("x"), gocalc.Var("y")
	assert.Equal(t, "x*y", integSimp(y, x))
}

func TestIntegrate_Variable(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "1/2*x^2", integSimp(x, x))
}

func TestIntegrate_PowerRule(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "1/3*x^3", integSimp(gocalc.NewPow(x, gocalc.Int(2)), x))
	assert.Equal(t, "-1*x^(-1)", integSimp(gocalc.NewPow(x, gocalc.Int(-2)), x))
}

func TestIntegrate_FractionalPower(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "2/3*x^(3/2)", integSimp(gocalc.Sqrt(x), x))
}

func TestIntegrate_ReciprocalGivesLogAbs(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "ln(abs(x))", integSimp(gocalc.NewPow(x, gocalc.Int(-1)), x))
}

func TestIntegrate_ExponentialBase(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "2^x*ln(2)^(-1)", integSimp(gocalc.NewPow(gocalc.Int(2), x), x))
}

// ============================================================
// Linearity
// ============================================================

func TestIntegrate_SumTermwise(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewAdd(gocalc.Sin(x), gocalc.Cos(x))
	assert.Equal(t, "-1*cos(x) + sin(x)", integSimp(e, x))
}

func TestIntegrate_CoefficientPullsOut(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewMul(gocalc.Int(6), gocalc.NewPow(x, gocalc.Int(2)))
	assert.Equal(t, "2*x^3", integSimp(e, x))
}

func TestIntegrate_ZeroCoefficient(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewMul(gocalc.Int(0), gocalc.Sin(x))
	assert.Equal(t, "0", integSimp(e, x))
}

func TestIntegrate_PartialProgressOnSum(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewAdd(x, gocalc.NewFunction("mystery", x))
	got := integSimp(e, x)
	assert.Equal(t, "integral(mystery(x), x) + 1/2*x^2", got)
}

// ============================================================
// Registry dispatch
// ============================================================

func TestIntegrate_RegisteredFunctions(t *testing.T) {
	x := gocalc.Var("x")
	cases := map[string]gocalc.Expr{
		"-1*cos(x)":         gocalc.Sin(x),
		"sin(x)":            gocalc.Cos(x),
		"exp(x)":            gocalc.Exp(x),
		"cosh(x)":           gocalc.Sinh(x),
		"sinh(x)":           gocalc.Cosh(x),
		"abs(x)":            gocalc.Sign(x),
		"atan(sinh(x))":     gocalc.Sech(x),
	}
	for want, e := range cases {
		assert.Equal(t, want, integSimp(e, x), e.String())
	}
}

func TestIntegrate_LnByParts(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "ln(x)*x + -1*x", integSimp(gocalc.Ln(x), x))
}

func TestIntegrate_TanGivesNegLogAbsCos(t *testing.T) {
	x := gocalc.Var("x")
	assert.Equal(t, "-1*ln(abs(cos(x)))", integSimp(gocalc.Tan(x), x))
}

// ============================================================
// Linear composites f(a·x)
// ============================================================

func TestIntegrate_LinearCompositeSin(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.Sin(gocalc.NewMul(gocalc.Int(3), x))
	assert.Equal(t, "-1/3*cos(3*x)", integSimp(e, x))
}

func TestIntegrate_LinearCompositeExp(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.Exp(gocalc.NewMul(gocalc.Int(5), x))
	assert.Equal(t, "1/5*exp(5*x)", integSimp(e, x))
}

func TestIntegrate_LinearCompositeRational(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.Cos(gocalc.NewMul(gocalc.Rat(1, 2), x))
	assert.Equal(t, "2*sin(1/2*x)", integSimp(e, x))
}

func TestIntegrate_ZeroLinearCoefficientNeverDivides(t *testing.T) {
	x := gocalc.Var("x")
	// cos(0·x) is a constant in x; the result must come from the constant
	// rule, not from dividing by the coefficient.
	e := gocalc.Cos(gocalc.NewMul(gocalc.Int(0), x))
	assert.Equal(t, "x", integSimp(e, x))
}

func TestIntegrate_NonlinearArgumentStaysWrapped(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.Sin(gocalc.NewPow(x, gocalc.Int(2)))
	result := gocalc.Integrate(e, x)
	_, ok := result.(*gocalc.Integral)
	assert.True(t, ok)
}

// ============================================================
// Totality
// ============================================================

func TestIntegrate_UnknownFunctionStaysWrapped(t *testing.T) {
	x := gocalc.Var("x")
	result := gocalc.Integrate(gocalc.NewFunction("mystery", x), x)
	in, ok := result.(*gocalc.Integral)
	require.True(t, ok)
	assert.Equal(t, "integral(mystery(x), x)", in.String())
}

func TestIntegrate_RegisteredWithoutRuleStaysWrapped(t *testing.T) {
	x := gocalc.Var("x")
	for _, name := range []string{"log2", "li", "asec", "floor"} {
		result := gocalc.Integrate(gocalc.NewFunction(name, x), x)
		_, ok := result.(*gocalc.Integral)
		assert.True(t, ok, name)
	}
}

func TestIntegrate_ProductOfFunctionsStaysWholeWhenUnmatched(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewMul(gocalc.Int(3), gocalc.NewFunction("mystery", x))
	result := gocalc.Integrate(e, x)
	in, ok := result.(*gocalc.Integral)
	require.True(t, ok)
	// The wrapper holds the original product, coefficient included.
	assert.Equal(t, "integral(3*mystery(x), x)", in.String())
}

func TestIntegrate_GeneralProductStaysWrapped(t *testing.T) {
	x := gocalc.Var("x")
	e := gocalc.NewMul(gocalc.Sin(x), gocalc.Cos(x))
	result := gocalc.Integrate(e, x)
	_, ok := result.(*gocalc.Integral)
	assert.True(t, ok)
}
