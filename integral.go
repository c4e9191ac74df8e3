package gocalc

// ============================================================
// Integral engine
//
// Symbolic antidifferentiation by pattern dispatch, in a fixed priority
// order: constant rule, power rules, linearity over sums, coefficient
// extraction over products, then registry rules for f(x) and f(a·x). No
// general substitution or by-parts search happens here — anything the
// patterns miss comes back as an unevaluated Integral node, which is a
// result, not an error.
// ============================================================

// Integrate returns an antiderivative of expr with respect to sym, without
// the constant of integration. The result is raw; callers normally pass it
// through Simplify.
func Integrate(expr Expr, sym *Symbol) Expr {
	// Constant rule first: anything free of sym integrates to expr·sym.
	// This also catches f(0·x) shapes once simplified to f(0).
	if !DependsOn(expr, sym) {
		return NewMul(expr, sym)
	}

	switch e := expr.(type) {
	case *Symbol:
		// x → x²/2. The DependsOn gate above filtered foreign symbols.
		return NewMul(Rat(1, 2), NewPow(e, Int(2)))

	case *Add:
		return integrateSum(e, sym)

	case *Mul:
		return integrateProduct(e, sym)

	case *Pow:
		if r := integratePower(e, sym); r != nil {
			return r
		}

	case *Function:
		if r := integrateFunction(e, sym); r != nil {
			return r
		}
	}
	return NewIntegral(expr, sym)
}

// integrateSum distributes over the terms. A term the patterns cannot
// handle stays wrapped, so partial progress on the others is kept.
func integrateSum(a *Add, sym *Symbol) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = Integrate(t, sym)
	}
	return NewAdd(terms...)
}

// integrateProduct pulls numeric coefficients out front and integrates the
// rest. If the remainder comes back unevaluated the whole product is
// wrapped instead, so the caller sees ∫3·f(x)dx rather than 3·∫f(x)dx with
// a dangling wrapper inside.
func integrateProduct(m *Mul, sym *Symbol) Expr {
	coeff := Int(1)
	rest := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		if n, ok := f.(*Number); ok {
			coeff = numMul(coeff, n)
			continue
		}
		rest = append(rest, f)
	}
	if coeff.IsZero() {
		return Int(0)
	}
	if len(rest) == 0 {
		return NewMul(coeff, sym)
	}
	if len(rest) == len(m.factors) {
		// No coefficient to pull; a bare product of non-numeric factors has
		// no rule here.
		return NewIntegral(m, sym)
	}
	inner := Integrate(NewMul(rest...), sym)
	if _, unevaluated := inner.(*Integral); unevaluated {
		return NewIntegral(m, sym)
	}
	if coeff.IsOne() {
		return inner
	}
	return NewMul(coeff, inner)
}

// integratePower handles x^n for rational n (including the n = -1 log
// case) and a^x for positive numeric bases. Returns nil when the shape is
// not one of those.
func integratePower(p *Pow, sym *Symbol) Expr {
	base, baseIsSym := p.base.(*Symbol)
	exp, expIsNum := p.exp.(*Number)

	if baseIsSym && base.name == sym.name && expIsNum {
		if exp.IsNegOne() {
			return Ln(Abs(sym))
		}
		// x^n → x^(n+1)/(n+1).
		n1 := numAdd(exp, Int(1))
		return NewMul(numRecip(n1), NewPow(sym, n1))
	}

	if b, ok := p.base.(*Number); ok && b.IsPositive() && !b.IsOne() {
		if es, ok := p.exp.(*Symbol); ok && es.name == sym.name {
			// a^x → a^x/ln(a).
			return NewMul(NewPow(b, sym), NewPow(Ln(b), Int(-1)))
		}
	}
	return nil
}

// integrateFunction consults the registry for f(x) and the linear
// composite f(a·x). Returns nil when no rule applies.
func integrateFunction(f *Function, sym *Symbol) Expr {
	arg := f.Arg()
	if arg == nil || len(f.args) != 1 {
		return nil
	}
	props, ok := Lookup(f.name)
	if !ok || props.Antiderivative == nil {
		return nil
	}

	// Direct hit: the argument is the integration variable itself.
	if s, ok := arg.(*Symbol); ok && s.name == sym.name {
		return buildAntiderivative(props.Antiderivative, sym)
	}

	// Linear composite f(a·x): integrate as F(a·x)/a. Only the exact
	// Number·Symbol shape qualifies; anything richer needs substitution
	// machinery this engine does not carry.
	if a, ok := linearCoefficient(arg, sym); ok {
		if a.IsZero() {
			// f(0·x) is a constant in x. Never divide by a.
			return NewMul(f, sym)
		}
		outer := buildAntiderivative(props.Antiderivative, sym)
		shifted := outer.Substitute(sym.name, NewMul(a, sym))
		return NewMul(numRecip(a), shifted)
	}
	return nil
}

// linearCoefficient matches arg against a·sym with a Number coefficient,
// zero included.
func linearCoefficient(arg Expr, sym *Symbol) (*Number, bool) {
	m, ok := arg.(*Mul)
	if !ok || len(m.factors) != 2 {
		return nil, false
	}
	a, ok := m.factors[0].(*Number)
	if !ok {
		return nil, false
	}
	s, ok := m.factors[1].(*Symbol)
	if !ok || s.name != sym.name {
		return nil, false
	}
	return a, true
}

// buildAntiderivative materializes F(sym) from a registered rule.
func buildAntiderivative(rule *AntiderivativeRule, sym *Symbol) Expr {
	switch rule.Kind {
	case AntiderivSimple:
		out := NewFunction(rule.Target, sym)
		if rule.Coefficient != nil && !rule.Coefficient.IsOne() {
			return NewMul(rule.Coefficient, out)
		}
		return out
	case AntiderivCustom:
		return rule.Build(sym)
	}
	panic("gocalc: unknown antiderivative rule kind")
}
