package gocalc

import (
	"sort"
)

// Simplify is the separate normalization pass callers run over engine output.
// The calculus engines themselves never simplify and never reorder anything.
//
// The pass flattens nested sums and products, folds exact rational
// arithmetic, collects like terms and like factors, and applies a small set
// of exact structural identities. Factor reordering and like-factor merging
// inside a product happen only when every factor commutes.
func Simplify(e Expr) Expr {
	prev := ""
	curr := simplifyExpr(e)
	for i := 0; i < 10; i++ {
		s := curr.String()
		if s == prev {
			break
		}
		prev = s
		curr = simplifyExpr(curr)
	}
	return curr
}

func simplifyExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		return simplifyAdd(v)
	case *Mul:
		return simplifyMul(v)
	case *Pow:
		return simplifyPow(v)
	case *Function:
		return simplifyFunction(v)
	case *Integral:
		return NewIntegral(simplifyExpr(v.integrand), v.sym)
	case *Derivative:
		return NewDerivative(simplifyExpr(v.expr), v.sym)
	}
	return e
}

// ============================================================
// Sums
// ============================================================

type collectedTerm struct {
	coeff *Number
	rest  Expr
	key   string
}

func simplifyAdd(a *Add) Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := simplifyExpr(t)
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	numAccum := Int(0)
	var collected []collectedTerm
	index := map[string]int{}
	for _, t := range flat {
		if n, ok := t.(*Number); ok {
			numAccum = numAdd(numAccum, n)
			continue
		}
		coeff, rest := splitCoefficient(t)
		key := rest.String()
		if i, seen := index[key]; seen {
			collected[i].coeff = numAdd(collected[i].coeff, coeff)
		} else {
			index[key] = len(collected)
			collected = append(collected, collectedTerm{coeff: coeff, rest: rest, key: key})
		}
	}

	kept := collected[:0]
	for _, c := range collected {
		if !c.coeff.IsZero() {
			kept = append(kept, c)
		}
	}
	collected = kept

	collected, numAccum = pythagoreanRewrite(collected, numAccum)

	// Addition commutes for every symbol kind, so sorting is always safe.
	sort.Slice(collected, func(i, j int) bool { return collected[i].key < collected[j].key })

	result := make([]Expr, 0, len(collected)+1)
	for _, c := range collected {
		result = append(result, applyCoefficient(c.coeff, c.rest))
	}
	if !numAccum.IsZero() {
		result = append(result, numAccum)
	}
	switch len(result) {
	case 0:
		return Int(0)
	case 1:
		return result[0]
	}
	return &Add{terms: result}
}

// splitCoefficient peels a leading rational off a simplified product.
func splitCoefficient(e Expr) (*Number, Expr) {
	if m, ok := e.(*Mul); ok && len(m.factors) >= 2 {
		if n, ok2 := m.factors[0].(*Number); ok2 {
			rest := m.factors[1:]
			if len(rest) == 1 {
				return n, rest[0]
			}
			return n, &Mul{factors: rest}
		}
	}
	return Int(1), e
}

func applyCoefficient(coeff *Number, rest Expr) Expr {
	if coeff.IsOne() {
		return rest
	}
	if m, ok := rest.(*Mul); ok {
		return &Mul{factors: append([]Expr{coeff}, m.factors...)}
	}
	return &Mul{factors: []Expr{coeff, rest}}
}

// pythagoreanRewrite applies two exact identities over collected sum terms:
// c·sin²(u) + c·cos²(u) → c, and k + c·sinh²(u) → c·cosh²(u) when k == c.
func pythagoreanRewrite(terms []collectedTerm, numAccum *Number) ([]collectedTerm, *Number) {
	squaredFn := func(e Expr) (name string, arg Expr, ok bool) {
		p, isPow := e.(*Pow)
		if !isPow {
			return "", nil, false
		}
		n, isNum := p.exp.(*Number)
		if !isNum || !n.Equal(Int(2)) {
			return "", nil, false
		}
		f, isFn := p.base.(*Function)
		if !isFn || len(f.args) != 1 {
			return "", nil, false
		}
		return f.name, f.args[0], true
	}

	for i := 0; i < len(terms); i++ {
		ni, ai, ok := squaredFn(terms[i].rest)
		if !ok {
			continue
		}
		for j := i + 1; j < len(terms); j++ {
			nj, aj, ok2 := squaredFn(terms[j].rest)
			if !ok2 || !ai.Equal(aj) || numCmp(terms[i].coeff, terms[j].coeff) != 0 {
				continue
			}
			if (ni == "sin" && nj == "cos") || (ni == "cos" && nj == "sin") {
				numAccum = numAdd(numAccum, terms[i].coeff)
				rest := make([]collectedTerm, 0, len(terms)-2)
				for k, t := range terms {
					if k != i && k != j {
						rest = append(rest, t)
					}
				}
				return pythagoreanRewrite(rest, numAccum)
			}
		}
	}

	for i, t := range terms {
		name, arg, ok := squaredFn(t.rest)
		if !ok || name != "sinh" {
			continue
		}
		if numCmp(numAccum, t.coeff) != 0 {
			continue
		}
		rewritten := NewPow(Cosh(arg), Int(2))
		out := make([]collectedTerm, len(terms))
		copy(out, terms)
		out[i] = collectedTerm{coeff: t.coeff, rest: rewritten, key: rewritten.String()}
		return out, Int(0)
	}
	return terms, numAccum
}

// ============================================================
// Products
// ============================================================

func simplifyMul(m *Mul) Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := simplifyExpr(f)
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	// Rationals are scalars and commute with everything, so folding them out
	// of the factor sequence is safe even in a noncommutative product.
	coeff := Int(1)
	others := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Number); ok {
			coeff = numMul(coeff, n)
		} else {
			others = append(others, f)
		}
	}
	if coeff.IsZero() {
		return Int(0)
	}

	commutative := true
	for _, f := range others {
		if !f.IsCommutative() {
			commutative = false
			break
		}
	}

	if commutative {
		others, coeff = functionPairRewrite(others, coeff)
		others, coeff = mergeLikeFactors(others, coeff)
		others, coeff = cancelQuotients(others, coeff)
	}
	others = reciprocalRewrite(others)

	if commutative {
		type keyed struct {
			e   Expr
			key string
		}
		ks := make([]keyed, len(others))
		for i, e := range others {
			ks[i] = keyed{e: e, key: e.String()}
		}
		sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
		for i := range ks {
			others[i] = ks[i].e
		}
	}

	switch {
	case len(others) == 0:
		return coeff
	case coeff.IsOne() && len(others) == 1:
		return others[0]
	case coeff.IsOne():
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

// functionPairRewrite folds factor pairs into single named functions:
// sign(u)·|u|⁻¹ → u⁻¹, sign(u)·u → |u|, sin(u)·cos(u)⁻¹ → tan(u), and the
// cot/tanh/coth analogues. Only called on all-commutative factor sets.
func functionPairRewrite(factors []Expr, coeff *Number) ([]Expr, *Number) {
	unaryFn := func(e Expr) (string, Expr, bool) {
		f, ok := e.(*Function)
		if !ok || len(f.args) != 1 {
			return "", nil, false
		}
		return f.name, f.args[0], true
	}
	recipFn := func(e Expr) (string, Expr, bool) {
		p, ok := e.(*Pow)
		if !ok {
			return "", nil, false
		}
		n, ok2 := p.exp.(*Number)
		if !ok2 || !n.IsNegOne() {
			return "", nil, false
		}
		return unaryFn(p.base)
	}
	quotients := map[[2]string]func(Expr) Expr{
		{"sin", "cos"}:   Tan,
		{"cos", "sin"}:   Cot,
		{"sinh", "cosh"}: Tanh,
		{"cosh", "sinh"}: Coth,
	}

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(factors) && !changed; i++ {
			for j := 0; j < len(factors) && !changed; j++ {
				if i == j {
					continue
				}
				fi, fj := factors[i], factors[j]

				// sign(u) · |u|^-1  →  u^-1
				if name, arg, ok := unaryFn(fi); ok && name == "sign" {
					if rn, rarg, rok := recipFn(fj); rok && rn == "abs" && arg.Equal(rarg) {
						factors = replacePair(factors, i, j, NewPow(arg, Int(-1)))
						changed = true
						continue
					}
					// sign(u) · u  →  |u|
					if arg.Equal(fj) {
						factors = replacePair(factors, i, j, Abs(arg))
						changed = true
						continue
					}
				}

				if name, arg, ok := unaryFn(fi); ok {
					if rn, rarg, rok := recipFn(fj); rok && arg.Equal(rarg) {
						if build, found := quotients[[2]string{name, rn}]; found {
							factors = replacePair(factors, i, j, build(arg))
							changed = true
						}
					}
				}
			}
		}
	}
	return factors, coeff
}

func replacePair(factors []Expr, i, j int, repl Expr) []Expr {
	out := make([]Expr, 0, len(factors)-1)
	for k, f := range factors {
		if k == j {
			continue
		}
		if k == i {
			out = append(out, repl)
		} else {
			out = append(out, f)
		}
	}
	return out
}

// mergeLikeFactors combines factors sharing a base by summing exponents.
// x · x⁻¹ → 1, cosh(u) · cosh(u)⁻² → cosh(u)⁻¹.
func mergeLikeFactors(factors []Expr, coeff *Number) ([]Expr, *Number) {
	type group struct {
		base Expr
		exps []Expr
	}
	var order []string
	groups := map[string]*group{}
	for _, f := range factors {
		base, exp := f, Expr(Int(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.base, p.exp
		}
		key := base.String()
		g, seen := groups[key]
		if !seen {
			g = &group{base: base}
			groups[key] = g
			order = append(order, key)
		}
		g.exps = append(g.exps, exp)
	}

	out := make([]Expr, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if len(g.exps) == 1 {
			if n, ok := g.exps[0].(*Number); ok && n.IsOne() {
				out = append(out, g.base)
			} else {
				out = append(out, simplifyPow(&Pow{base: g.base, exp: g.exps[0]}))
			}
			continue
		}
		total := simplifyExpr(NewAdd(g.exps...))
		merged := simplifyPow(&Pow{base: g.base, exp: total})
		if n, ok := merged.(*Number); ok {
			coeff = numMul(coeff, n)
			continue
		}
		out = append(out, merged)
	}
	return out, coeff
}

// cancelQuotients cancels an Add factor against a matching Add⁻¹ factor,
// extracting a common function factor from the numerator when needed:
// (sec·tan + sec²) · (sec+tan)⁻¹ → sec.
func cancelQuotients(factors []Expr, coeff *Number) ([]Expr, *Number) {
	for j, f := range factors {
		p, ok := f.(*Pow)
		if !ok {
			continue
		}
		n, ok2 := p.exp.(*Number)
		if !ok2 || !n.IsNegOne() {
			continue
		}
		denom, ok3 := p.base.(*Add)
		if !ok3 {
			continue
		}
		for i, g := range factors {
			if i == j {
				continue
			}
			if g.Equal(denom) {
				return removeTwo(factors, i, j), coeff
			}
			num, ok4 := g.(*Add)
			if !ok4 {
				continue
			}
			if common, negated, found := extractCommonFactor(num, denom); found {
				out := removeTwo(factors, i, j)
				out = append(out, common)
				if negated {
					coeff = numNeg(coeff)
				}
				return out, coeff
			}
		}
	}
	return factors, coeff
}

func removeTwo(factors []Expr, i, j int) []Expr {
	out := make([]Expr, 0, len(factors)-2)
	for k, f := range factors {
		if k != i && k != j {
			out = append(out, f)
		}
	}
	return out
}

// extractCommonFactor finds g such that num == g·denom (or -g·denom),
// trying the non-numeric factors of num's first term as candidates.
func extractCommonFactor(num, denom *Add) (Expr, bool, bool) {
	if len(num.terms) == 0 {
		return nil, false, false
	}
	var candidates []Expr
	appendCandidate := func(e Expr) {
		if _, isNum := e.(*Number); isNum {
			return
		}
		if p, ok := e.(*Pow); ok {
			candidates = append(candidates, p.base)
			return
		}
		candidates = append(candidates, e)
	}
	switch first := num.terms[0].(type) {
	case *Mul:
		for _, f := range first.factors {
			appendCandidate(f)
		}
	default:
		appendCandidate(first)
	}

	for _, g := range candidates {
		quot := make([]Expr, 0, len(num.terms))
		ok := true
		for _, t := range num.terms {
			q, divOk := divideTermBy(t, g)
			if !divOk {
				ok = false
				break
			}
			quot = append(quot, q)
		}
		if !ok {
			continue
		}
		rest := simplifyExpr(NewAdd(quot...))
		if rest.Equal(denom) {
			return g, false, true
		}
		negQuot := make([]Expr, len(quot))
		for k, q := range quot {
			negQuot[k] = Neg(q)
		}
		if simplifyExpr(NewAdd(negQuot...)).Equal(denom) {
			return g, true, true
		}
	}
	return nil, false, false
}

func divideTermBy(term, g Expr) (Expr, bool) {
	if term.Equal(g) {
		return Int(1), true
	}
	if p, ok := term.(*Pow); ok && p.base.Equal(g) {
		return simplifyPow(&Pow{base: p.base, exp: simplifyExpr(NewAdd(p.exp, Int(-1)))}), true
	}
	if m, ok := term.(*Mul); ok {
		for i, f := range m.factors {
			if f.Equal(g) {
				rest := make([]Expr, 0, len(m.factors)-1)
				rest = append(rest, m.factors[:i]...)
				rest = append(rest, m.factors[i+1:]...)
				return simplifyExpr(NewMul(rest...)), true
			}
			if p, ok2 := f.(*Pow); ok2 && p.base.Equal(g) {
				rest := make([]Expr, len(m.factors))
				copy(rest, m.factors)
				rest[i] = simplifyPow(&Pow{base: p.base, exp: simplifyExpr(NewAdd(p.exp, Int(-1)))})
				return simplifyExpr(NewMul(rest...)), true
			}
		}
	}
	return nil, false
}

// reciprocalRewrite maps negative powers of the four co-named functions to
// their dedicated forms: cos⁻¹→sec, sin⁻²→csc², cosh⁻¹→sech, sinh⁻¹→csch.
// An in-place single-factor replacement, so it is order-safe regardless of
// commutativity.
func reciprocalRewrite(factors []Expr) []Expr {
	recipNames := map[string]func(Expr) Expr{
		"cos":  Sec,
		"sin":  Csc,
		"cosh": Sech,
		"sinh": Csch,
	}
	for i, f := range factors {
		p, ok := f.(*Pow)
		if !ok {
			continue
		}
		n, ok2 := p.exp.(*Number)
		if !ok2 || !n.IsNegative() || !n.IsInteger() {
			continue
		}
		fn, ok3 := p.base.(*Function)
		if !ok3 || len(fn.args) != 1 {
			continue
		}
		build, found := recipNames[fn.name]
		if !found {
			continue
		}
		if n.IsNegOne() {
			factors[i] = build(fn.args[0])
		} else {
			factors[i] = &Pow{base: build(fn.args[0]), exp: numNeg(n)}
		}
	}
	return factors
}

// ============================================================
// Powers
// ============================================================

func simplifyPow(p *Pow) Expr {
	base := simplifyExpr(p.base)
	exp := simplifyExpr(p.exp)

	if en, ok := exp.(*Number); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
	}

	if bn, ok := base.(*Number); ok {
		if bn.IsZero() {
			// 0^0 and 0^negative stay unevaluated.
			if en, ok2 := exp.(*Number); ok2 && (en.IsZero() || en.IsNegative()) {
				return &Pow{base: base, exp: exp}
			}
			if _, ok2 := exp.(*Number); ok2 {
				return Int(0)
			}
		}
		if bn.IsOne() {
			return Int(1)
		}
		if en, ok2 := exp.(*Number); ok2 && en.IsInteger() {
			e := en.val.Num().Int64()
			if e >= -20 && e <= 20 {
				mag := e
				if mag < 0 {
					mag = -mag
				}
				result := Int(1)
				for i := int64(0); i < mag; i++ {
					result = numMul(result, bn)
				}
				if e < 0 {
					// base == 0 was handled above.
					result = numRecip(result)
				}
				return result
			}
		}
	}

	if inner, ok := base.(*Pow); ok {
		newExp := simplifyExpr(NewMul(inner.exp, exp))
		return simplifyPow(&Pow{base: inner.base, exp: newExp})
	}
	return &Pow{base: base, exp: exp}
}

// ============================================================
// Function applications
// ============================================================

func simplifyFunction(f *Function) Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = simplifyExpr(a)
	}
	out := &Function{name: f.name, args: args}
	if len(args) != 1 {
		return out
	}
	arg := args[0]

	switch f.name {
	case "sin":
		if isNumEqual(arg, 0) {
			return Int(0)
		}
	case "cos":
		if isNumEqual(arg, 0) {
			return Int(1)
		}
	case "exp":
		if isNumEqual(arg, 0) {
			return Int(1)
		}
		if inner, ok := arg.(*Function); ok && inner.name == "ln" && len(inner.args) == 1 {
			return inner.args[0]
		}
	case "ln":
		if n, ok := arg.(*Number); ok && n.IsOne() {
			return Int(0)
		}
		if inner, ok := arg.(*Function); ok && inner.name == "exp" && len(inner.args) == 1 {
			return inner.args[0]
		}
	case "abs":
		if n, ok := arg.(*Number); ok {
			if n.IsNegative() {
				return numNeg(n)
			}
			return n
		}
		if m, ok := arg.(*Mul); ok && len(m.factors) >= 2 {
			if n, ok2 := m.factors[0].(*Number); ok2 && n.IsNegOne() {
				return simplifyFunction(&Function{name: "abs", args: []Expr{NewMul(m.factors[1:]...)}})
			}
		}
	case "sign":
		if n, ok := arg.(*Number); ok {
			switch {
			case n.IsPositive():
				return Int(1)
			case n.IsNegative():
				return Int(-1)
			default:
				return Int(0)
			}
		}
	}
	return out
}

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Number)
	return ok && n.Equal(Int(v))
}
