package gocalc

// Special functions and the piecewise pair abs/sign. Si, Ci and Ei are
// defined by the integrals of sin(x)/x, cos(x)/x and exp(x)/x, so their
// derivatives are those integrands and their antiderivatives come from one
// round of integration by parts. li has no elementary antiderivative, and
// floor/ceil carry no calculus at all: differentiating or integrating them
// yields the unevaluated wrapper.
func registerSpecial(reg map[string]*FunctionProperties) {
	register(reg, &FunctionProperties{
		Name:  "Si",
		Class: Special,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewMul(Sin(arg), NewPow(arg, Int(-1)))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, NewFunction("Si", arg)), Cos(arg))
			},
			ResultTemplate: "∫Si(x)dx = x·Si(x) + cos(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "Ci",
		Class: Special,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewMul(Cos(arg), NewPow(arg, Int(-1)))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, NewFunction("Ci", arg)), Neg(Sin(arg)))
			},
			ResultTemplate: "∫Ci(x)dx = x·Ci(x) - sin(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "Ei",
		Class: Special,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewMul(Exp(arg), NewPow(arg, Int(-1)))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, NewFunction("Ei", arg)), Neg(Exp(arg)))
			},
			ResultTemplate: "∫Ei(x)dx = x·Ei(x) - exp(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "li",
		Class: Special,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(Ln(arg), Int(-1)) },
		},
	})

	register(reg, &FunctionProperties{
		Name:  "abs",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:        DerivChain,
			Target:      "sign",
			Coefficient: Int(1),
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewMul(Rat(1, 2), arg, Abs(arg))
			},
			ResultTemplate: "∫|x|dx = (1/2)x·|x| + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "sign",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			// Zero almost everywhere; the jump at the origin is not modeled.
			Build: func(arg Expr) Expr { return Int(0) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivSimple,
			Target:         "abs",
			Coefficient:    Int(1),
			ResultTemplate: "∫sign(x)dx = |x| + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{Name: "floor", Class: Special})
	register(reg, &FunctionProperties{Name: "ceil", Class: Special})
}
