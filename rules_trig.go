package gocalc

// Trigonometric family. The closed antiderivative forms for tan, sec, csc
// and cot were derived once (substitution u = cos x, etc.) and stored as
// Custom builders; nothing re-derives them at call time.
func registerTrig(reg map[string]*FunctionProperties) {
	register(reg, &FunctionProperties{
		Name:  "sin",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:   DerivChain,
			Target: "cos",
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivSimple,
			Target:         "cos",
			Coefficient:    Int(-1),
			ResultTemplate: "∫sin(x)dx = -cos(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "cos",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:        DerivChain,
			Target:      "sin",
			Coefficient: Int(-1),
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivSimple,
			Target:         "sin",
			ResultTemplate: "∫cos(x)dx = sin(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "tan",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(Sec(arg), Int(2)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivCustom,
			Build:          func(arg Expr) Expr { return Neg(Ln(Abs(Cos(arg)))) },
			ResultTemplate: "∫tan(x)dx = -ln|cos(x)| + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "sec",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewMul(Sec(arg), Tan(arg)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivCustom,
			Build:          func(arg Expr) Expr { return Ln(Abs(NewAdd(Sec(arg), Tan(arg)))) },
			ResultTemplate: "∫sec(x)dx = ln|sec(x) + tan(x)| + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "csc",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return Neg(NewMul(Csc(arg), Cot(arg))) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivCustom,
			Build:          func(arg Expr) Expr { return Neg(Ln(Abs(NewAdd(Csc(arg), Cot(arg))))) },
			ResultTemplate: "∫csc(x)dx = -ln|csc(x) + cot(x)| + C",
			Constant:       AddConstant,
		},
	})

	// cot is carried as the structural quotient cos/sin; the engine expands
	// the quotient rule from the cos and sin entries.
	register(reg, &FunctionProperties{
		Name:  "cot",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivQuotient,
			U:    "cos",
			V:    "sin",
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivCustom,
			Build:          func(arg Expr) Expr { return Ln(Abs(Sin(arg))) },
			ResultTemplate: "∫cot(x)dx = ln|sin(x)| + C",
			Constant:       AddConstant,
		},
	})
}
