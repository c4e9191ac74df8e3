package gocalc

// ============================================================
// Derivative engine
//
// Structural recursion over the expression tree. Every arm either applies a
// calculus rule or returns an unevaluated Derivative node, so the engine is
// total: it cannot fail, and it never reorders Mul factors, which keeps it
// sound for noncommutative symbols.
// ============================================================

// Differentiate returns the derivative of expr with respect to sym. The
// result is raw; callers normally pass it through Simplify.
func Differentiate(expr Expr, sym *Symbol) Expr {
	switch e := expr.(type) {
	case *Number:
		return Int(0)

	case *Symbol:
		if e.name == sym.name {
			return Int(1)
		}
		return Int(0)

	case *Add:
		terms := make([]Expr, len(e.terms))
		for i, t := range e.terms {
			terms[i] = Differentiate(t, sym)
		}
		return NewAdd(terms...)

	case *Mul:
		return differentiateProduct(e.factors, sym)

	case *Pow:
		return differentiatePower(e, sym)

	case *Function:
		return differentiateFunction(e, sym)

	case *Integral:
		// Fundamental theorem: d/dx ∫f dx = f. Only for the same variable;
		// differentiation under the integral sign is not modeled.
		if e.sym.name == sym.name {
			return e.integrand
		}
		return NewDerivative(expr, sym)
	}
	return NewDerivative(expr, sym)
}

// differentiateProduct applies the generalized product rule
// (u₁u₂…uₙ)' = Σᵢ u₁…uᵢ'…uₙ, keeping every factor in its original slot.
func differentiateProduct(factors []Expr, sym *Symbol) Expr {
	terms := make([]Expr, 0, len(factors))
	for i := range factors {
		d := Differentiate(factors[i], sym)
		if n, ok := d.(*Number); ok && n.IsZero() {
			continue
		}
		part := make([]Expr, len(factors))
		copy(part, factors)
		part[i] = d
		terms = append(terms, NewMul(part...))
	}
	return NewAdd(terms...)
}

func differentiatePower(p *Pow, sym *Symbol) Expr {
	if n, ok := p.exp.(*Number); ok && n.IsZero() {
		return Int(0)
	}
	baseDep := DependsOn(p.base, sym)
	expDep := DependsOn(p.exp, sym)
	switch {
	case !baseDep && !expDep:
		return Int(0)
	case baseDep && !expDep:
		// (u^n)' = n·u^(n-1)·u'
		return NewMul(
			p.exp,
			NewPow(p.base, NewAdd(p.exp, Int(-1))),
			Differentiate(p.base, sym),
		)
	case !baseDep && expDep:
		// (a^v)' = a^v·ln(a)·v'
		return NewMul(
			NewPow(p.base, p.exp),
			Ln(p.base),
			Differentiate(p.exp, sym),
		)
	}
	// u^v with both sides live: u^v·(v'·ln(u) + v·u'/u).
	return NewMul(
		NewPow(p.base, p.exp),
		NewAdd(
			NewMul(Differentiate(p.exp, sym), Ln(p.base)),
			NewMul(p.exp, Differentiate(p.base, sym), NewPow(p.base, Int(-1))),
		),
	)
}

func differentiateFunction(f *Function, sym *Symbol) Expr {
	arg := f.Arg()
	if arg == nil || len(f.args) != 1 {
		// Multi-argument functions carry no registered calculus.
		return NewDerivative(f, sym)
	}
	if !DependsOn(arg, sym) {
		return Int(0)
	}
	props, ok := Lookup(f.name)
	if !ok || props.Derivative == nil {
		return NewDerivative(f, sym)
	}
	outer := outerDerivative(props.Derivative, arg)
	if outer == nil {
		return NewDerivative(f, sym)
	}
	inner := Differentiate(arg, sym)
	if n, ok := inner.(*Number); ok && n.IsOne() {
		return outer
	}
	return NewMul(outer, inner)
}

// outerDerivative materializes f'(arg) from a registered rule. A nil return
// means the rule could not be applied (a structural rule naming an
// unregistered component), and the caller falls back to the wrapper.
func outerDerivative(rule *DerivativeRule, arg Expr) Expr {
	switch rule.Kind {
	case DerivSimple, DerivChain:
		out := NewFunction(rule.Target, arg)
		if rule.Coefficient != nil && !rule.Coefficient.IsOne() {
			return NewMul(rule.Coefficient, out)
		}
		return out

	case DerivProduct:
		// f = U·V  ⇒  f' = U'·V + U·V'.
		du, dv := componentDerivative(rule.U, arg), componentDerivative(rule.V, arg)
		if du == nil || dv == nil {
			return nil
		}
		return NewAdd(
			NewMul(du, NewFunction(rule.V, arg)),
			NewMul(NewFunction(rule.U, arg), dv),
		)

	case DerivQuotient:
		// f = U/V  ⇒  f' = (U'·V - U·V')/V².
		du, dv := componentDerivative(rule.U, arg), componentDerivative(rule.V, arg)
		if du == nil || dv == nil {
			return nil
		}
		return NewMul(
			NewAdd(
				NewMul(du, NewFunction(rule.V, arg)),
				Neg(NewMul(NewFunction(rule.U, arg), dv)),
			),
			NewPow(NewFunction(rule.V, arg), Int(-2)),
		)

	case DerivCustom:
		return rule.Build(arg)
	}
	return nil
}

// componentDerivative is the outer derivative of a named registered
// function, used to expand structural Product/Quotient rules.
func componentDerivative(name string, arg Expr) Expr {
	props, ok := Lookup(name)
	if !ok || props.Derivative == nil {
		return nil
	}
	return outerDerivative(props.Derivative, arg)
}
