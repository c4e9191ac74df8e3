package gocalc

// Exponential and logarithmic family. exp is the one function that is its
// own derivative and antiderivative, so both sides are Simple rules with
// coefficient 1. The non-natural logs carry derivatives but no
// antiderivative rule: their integrals are expressible, but only through a
// change of base the engine does not normalize, so they fall through to the
// unevaluated wrapper.
func registerExpLog(reg map[string]*FunctionProperties) {
	register(reg, &FunctionProperties{
		Name:  "exp",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:        DerivSimple,
			Target:      "exp",
			Coefficient: Int(1),
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivSimple,
			Target:         "exp",
			Coefficient:    Int(1),
			ResultTemplate: "∫exp(x)dx = exp(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "ln",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(arg, Int(-1)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, Ln(arg)), Neg(arg))
			},
			ResultTemplate: "∫ln(x)dx = x·ln(x) - x + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "log2",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewPow(NewMul(arg, Ln(Int(2))), Int(-1))
			},
		},
	})

	register(reg, &FunctionProperties{
		Name:  "log10",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewPow(NewMul(arg, Ln(Int(10))), Int(-1))
			},
		},
	})
}
