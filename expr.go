// Package gocalc is a rule-based symbolic calculus engine for Go.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat), no floating-point calculus
//   - Immutable expression trees with cheap structural sharing
//   - A read-only function registry drives both calculus engines, so a new
//     function's derivative and antiderivative are added by data registration
//     alone, with zero engine edits
//   - Total engines: "no applicable rule" is an explicit unevaluated result,
//     never an error and never a guess
package gocalc

import (
	"fmt"
	"math/big"
	"strings"
)

// ============================================================
// Core interface
// ============================================================

// Expr is an immutable node in an expression tree. Nodes are shared freely
// between trees; nothing mutates a node after construction.
type Expr interface {
	String() string
	LaTeX() string

	// Equal reports structural equality. It is not mathematical equivalence;
	// callers that need x+y == y+x run Simplify on both sides first.
	Equal(other Expr) bool

	// Substitute returns a tree with every free occurrence of the named
	// symbol replaced by value. Untouched subtrees are shared, not copied.
	Substitute(name string, value Expr) Expr

	// IsCommutative reports whether the value commutes under multiplication.
	// Derived on demand from symbol kinds, never cached.
	IsCommutative() bool

	toJSON() map[string]interface{}
}

// ============================================================
// Number — exact rational
// ============================================================

type Number struct{ val *big.Rat }

func Int(n int64) *Number { return &Number{val: new(big.Rat).SetInt64(n)} }

func Rat(p, q int64) *Number {
	if q == 0 {
		panic("gocalc: denominator is zero")
	}
	return &Number{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float converts f to the exact rational it denotes. There is no float
// arithmetic anywhere downstream of this.
func Float(f float64) *Number { return &Number{val: new(big.Rat).SetFloat64(f)} }

func (n *Number) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Number) IsOne() bool      { return n.val.Cmp(ratOne) == 0 }
func (n *Number) IsNegOne() bool   { return n.val.Cmp(ratNegOne) == 0 }
func (n *Number) IsInteger() bool  { return n.val.IsInt() }
func (n *Number) IsPositive() bool { return n.val.Sign() > 0 }
func (n *Number) IsNegative() bool { return n.val.Sign() < 0 }
func (n *Number) Rat() *big.Rat    { return new(big.Rat).Set(n.val) }

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

func (n *Number) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Number) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func (n *Number) Equal(other Expr) bool {
	o, ok := other.(*Number)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Number) Substitute(string, Expr) Expr { return n }
func (n *Number) IsCommutative() bool          { return true }

func numAdd(a, b *Number) *Number { return &Number{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Number) *Number { return &Number{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Number) *Number    { return &Number{val: new(big.Rat).Neg(a.val)} }
func numCmp(a, b *Number) int     { return a.val.Cmp(b.val) }

func numRecip(a *Number) *Number {
	if a.IsZero() {
		panic("gocalc: division by zero")
	}
	return &Number{val: new(big.Rat).Inv(a.val)}
}

// ============================================================
// Symbol — named variable with a commutativity kind
// ============================================================

// SymbolType classifies a symbol's algebra. Scalar symbols commute under
// multiplication; the rest do not, and no code in this package may reorder a
// product containing one of them, even transiently.
type SymbolType int

const (
	Scalar SymbolType = iota
	Matrix
	Operator
	Quaternion
)

func (t SymbolType) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case Matrix:
		return "matrix"
	case Operator:
		return "operator"
	case Quaternion:
		return "quaternion"
	}
	return fmt.Sprintf("SymbolType(%d)", int(t))
}

type Symbol struct {
	name string
	kind SymbolType
}

// Var returns a scalar symbol.
func Var(name string) *Symbol { return &Symbol{name: name, kind: Scalar} }

// TypedVar returns a symbol with an explicit kind.
func TypedVar(name string, kind SymbolType) *Symbol { return &Symbol{name: name, kind: kind} }

func (s *Symbol) Name() string     { return s.name }
func (s *Symbol) Kind() SymbolType { return s.kind }
func (s *Symbol) String() string   { return s.name }
func (s *Symbol) LaTeX() string    { return s.name }

func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name && s.kind == o.kind
}

func (s *Symbol) Substitute(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Symbol) IsCommutative() bool { return s.kind == Scalar }

// ============================================================
// Add — ordered sum of terms
// ============================================================

type Add struct{ terms []Expr }

// NewAdd builds a sum. It collapses the degenerate arities but performs no
// simplification and no reordering; run Simplify for that.
func NewAdd(terms ...Expr) Expr {
	switch len(terms) {
	case 0:
		return Int(0)
	case 1:
		return terms[0]
	}
	return &Add{terms: terms}
}

func (a *Add) Terms() []Expr { return a.terms }

func (a *Add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) Substitute(name string, value Expr) Expr {
	out := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.Substitute(name, value)
	}
	return NewAdd(out...)
}

func (a *Add) IsCommutative() bool {
	for _, t := range a.terms {
		if !t.IsCommutative() {
			return false
		}
	}
	return true
}

// ============================================================
// Mul — ordered product of factors
// ============================================================

type Mul struct{ factors []Expr }

// NewMul builds a product preserving factor order exactly. Order is load
// bearing when any factor is noncommutative.
func NewMul(factors ...Expr) Expr {
	switch len(factors) {
	case 0:
		return Int(1)
	case 1:
		return factors[0]
	}
	return &Mul{factors: factors}
}

// Neg is shorthand for (-1)·e.
func Neg(e Expr) Expr { return NewMul(Int(-1), e) }

func (m *Mul) Factors() []Expr { return m.factors }

func (m *Mul) String() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Substitute(name string, value Expr) Expr {
	out := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		out[i] = f.Substitute(name, value)
	}
	return NewMul(out...)
}

func (m *Mul) IsCommutative() bool {
	for _, f := range m.factors {
		if !f.IsCommutative() {
			return false
		}
	}
	return true
}

// ============================================================
// Pow — base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func NewPow(base, exp Expr) Expr { return &Pow{base: base, exp: exp} }

// Sqrt is shorthand for e^(1/2).
func Sqrt(e Expr) Expr { return NewPow(e, Rat(1, 2)) }

func (p *Pow) Base() Expr     { return p.base }
func (p *Pow) Exponent() Expr { return p.exp }

func (p *Pow) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	switch p.exp.(type) {
	case *Add, *Mul, *Pow:
		expStr = "(" + expStr + ")"
	default:
		if n, ok := p.exp.(*Number); ok && (!n.IsInteger() || n.IsNegative()) {
			expStr = "(" + expStr + ")"
		}
	}
	return baseStr + "^" + expStr
}

func (p *Pow) LaTeX() string {
	baseStr := p.base.LaTeX()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) Substitute(name string, value Expr) Expr {
	return NewPow(p.base.Substitute(name, value), p.exp.Substitute(name, value))
}

func (p *Pow) IsCommutative() bool {
	return p.base.IsCommutative() && p.exp.IsCommutative()
}

// ============================================================
// Function — named application
// ============================================================

type Function struct {
	name string
	args []Expr
}

func NewFunction(name string, args ...Expr) Expr {
	return &Function{name: name, args: args}
}

func (f *Function) FuncName() string { return f.name }
func (f *Function) Args() []Expr     { return f.args }

// Arg returns the sole argument of a unary application, or nil.
func (f *Function) Arg() Expr {
	if len(f.args) == 1 {
		return f.args[0]
	}
	return nil
}

func (f *Function) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Function) LaTeX() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.LaTeX()
	}
	inner := strings.Join(parts, ", ")
	switch f.name {
	case "sin", "cos", "tan", "sec", "csc", "cot",
		"sinh", "cosh", "tanh", "exp", "ln":
		return "\\" + f.name + "\\left(" + inner + "\\right)"
	case "asin":
		return "\\arcsin\\left(" + inner + "\\right)"
	case "acos":
		return "\\arccos\\left(" + inner + "\\right)"
	case "atan":
		return "\\arctan\\left(" + inner + "\\right)"
	case "abs":
		return "\\left|" + inner + "\\right|"
	}
	return "\\operatorname{" + f.name + "}\\left(" + inner + "\\right)"
}

func (f *Function) Equal(other Expr) bool {
	o, ok := other.(*Function)
	if !ok || f.name != o.name || len(f.args) != len(o.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (f *Function) Substitute(name string, value Expr) Expr {
	out := make([]Expr, len(f.args))
	for i, a := range f.args {
		out[i] = a.Substitute(name, value)
	}
	return NewFunction(f.name, out...)
}

func (f *Function) IsCommutative() bool {
	for _, a := range f.args {
		if !a.IsCommutative() {
			return false
		}
	}
	return true
}

// Unary application helpers.
func Sin(arg Expr) Expr   { return NewFunction("sin", arg) }
func Cos(arg Expr) Expr   { return NewFunction("cos", arg) }
func Tan(arg Expr) Expr   { return NewFunction("tan", arg) }
func Sec(arg Expr) Expr   { return NewFunction("sec", arg) }
func Csc(arg Expr) Expr   { return NewFunction("csc", arg) }
func Cot(arg Expr) Expr   { return NewFunction("cot", arg) }
func Asin(arg Expr) Expr  { return NewFunction("asin", arg) }
func Acos(arg Expr) Expr  { return NewFunction("acos", arg) }
func Atan(arg Expr) Expr  { return NewFunction("atan", arg) }
func Acot(arg Expr) Expr  { return NewFunction("acot", arg) }
func Sinh(arg Expr) Expr  { return NewFunction("sinh", arg) }
func Cosh(arg Expr) Expr  { return NewFunction("cosh", arg) }
func Tanh(arg Expr) Expr  { return NewFunction("tanh", arg) }
func Sech(arg Expr) Expr  { return NewFunction("sech", arg) }
func Csch(arg Expr) Expr  { return NewFunction("csch", arg) }
func Coth(arg Expr) Expr  { return NewFunction("coth", arg) }
func Asinh(arg Expr) Expr { return NewFunction("asinh", arg) }
func Acosh(arg Expr) Expr { return NewFunction("acosh", arg) }
func Atanh(arg Expr) Expr { return NewFunction("atanh", arg) }
func Exp(arg Expr) Expr   { return NewFunction("exp", arg) }
func Ln(arg Expr) Expr    { return NewFunction("ln", arg) }
func Abs(arg Expr) Expr   { return NewFunction("abs", arg) }
func Sign(arg Expr) Expr  { return NewFunction("sign", arg) }

// ============================================================
// Integral — terminal "no rule found" form
// ============================================================

// Integral is the unevaluated antiderivative ∫ integrand d sym. It is only
// ever produced by this package, never consumed: it means the Integral Engine
// found no applicable rule. Downstream consumers must treat it as "calculus
// unavailable here".
type Integral struct {
	integrand Expr
	sym       *Symbol
}

func NewIntegral(integrand Expr, sym *Symbol) *Integral {
	return &Integral{integrand: integrand, sym: sym}
}

func (in *Integral) Integrand() Expr  { return in.integrand }
func (in *Integral) Variable() *Symbol { return in.sym }

func (in *Integral) String() string {
	return "integral(" + in.integrand.String() + ", " + in.sym.name + ")"
}

func (in *Integral) LaTeX() string {
	return "\\int " + in.integrand.LaTeX() + "\\, d" + in.sym.LaTeX()
}

func (in *Integral) Equal(other Expr) bool {
	o, ok := other.(*Integral)
	return ok && in.integrand.Equal(o.integrand) && in.sym.Equal(o.sym)
}

func (in *Integral) Substitute(name string, value Expr) Expr {
	if name == in.sym.name {
		// Bound variable: nothing inside is free in it.
		return in
	}
	return NewIntegral(in.integrand.Substitute(name, value), in.sym)
}

func (in *Integral) IsCommutative() bool { return in.integrand.IsCommutative() }

// ============================================================
// Derivative — terminal unevaluated derivative
// ============================================================

// Derivative is the derivative-side twin of Integral: d/d sym of expr where
// no rule applied (an unregistered or multi-argument function).
type Derivative struct {
	expr Expr
	sym  *Symbol
}

func NewDerivative(expr Expr, sym *Symbol) *Derivative {
	return &Derivative{expr: expr, sym: sym}
}

func (d *Derivative) Operand() Expr    { return d.expr }
func (d *Derivative) Variable() *Symbol { return d.sym }

func (d *Derivative) String() string {
	return "derivative(" + d.expr.String() + ", " + d.sym.name + ")"
}

func (d *Derivative) LaTeX() string {
	return "\\frac{d}{d" + d.sym.LaTeX() + "}\\left(" + d.expr.LaTeX() + "\\right)"
}

func (d *Derivative) Equal(other Expr) bool {
	o, ok := other.(*Derivative)
	return ok && d.expr.Equal(o.expr) && d.sym.Equal(o.sym)
}

func (d *Derivative) Substitute(name string, value Expr) Expr {
	if name == d.sym.name {
		return d
	}
	return NewDerivative(d.expr.Substitute(name, value), d.sym)
}

func (d *Derivative) IsCommutative() bool { return d.expr.IsCommutative() }

// ============================================================
// Tree queries
// ============================================================

// DependsOn reports whether sym occurs free in e. An unevaluated Integral or
// Derivative counts as depending on its own bound variable: the value it
// stands for is a function of it.
func DependsOn(e Expr, sym *Symbol) bool {
	switch v := e.(type) {
	case *Number:
		return false
	case *Symbol:
		return v.name == sym.name
	case *Add:
		for _, t := range v.terms {
			if DependsOn(t, sym) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if DependsOn(f, sym) {
				return true
			}
		}
	case *Pow:
		return DependsOn(v.base, sym) || DependsOn(v.exp, sym)
	case *Function:
		for _, a := range v.args {
			if DependsOn(a, sym) {
				return true
			}
		}
	case *Integral:
		return v.sym.name == sym.name || DependsOn(v.integrand, sym)
	case *Derivative:
		return v.sym.name == sym.name || DependsOn(v.expr, sym)
	}
	return false
}

// FreeSymbols returns the names of all symbols occurring in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Symbol:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Function:
		for _, a := range v.args {
			collectSymbols(a, out)
		}
	case *Integral:
		collectSymbols(v.integrand, out)
		out[v.sym.name] = struct{}{}
	case *Derivative:
		collectSymbols(v.expr, out)
		out[v.sym.name] = struct{}{}
	}
}
