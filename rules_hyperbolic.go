package gocalc

// Hyperbolic family and its inverses. The sinh/cosh pair mirrors sin/cos
// without the sign flip; tanh/coth integrate to logs of their denominators,
// and sech needs the atan(sinh) form for its antiderivative.
func registerHyperbolic(reg map[string]*FunctionProperties) {
	register(reg, &FunctionProperties{
		Name:  "sinh",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:        DerivChain,
			Target:      "cosh",
			Coefficient: Int(1),
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivSimple,
			Target:         "cosh",
			Coefficient:    Int(1),
			ResultTemplate: "∫sinh(x)dx = cosh(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "cosh",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:        DerivChain,
			Target:      "sinh",
			Coefficient: Int(1),
		},
		Antiderivative: &AntiderivativeRule{
			Kind:           AntiderivSimple,
			Target:         "sinh",
			Coefficient:    Int(1),
			ResultTemplate: "∫cosh(x)dx = sinh(x) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "tanh",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(Sech(arg), Int(2)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return Ln(Abs(Cosh(arg)))
			},
			ResultTemplate: "∫tanh(x)dx = ln|cosh(x)| + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "sech",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return Neg(NewMul(Sech(arg), Tanh(arg)))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return Atan(Sinh(arg))
			},
			ResultTemplate: "∫sech(x)dx = atan(sinh(x)) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "csch",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return Neg(NewMul(Csch(arg), Coth(arg)))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return Neg(Ln(Abs(NewAdd(Csch(arg), Coth(arg)))))
			},
			ResultTemplate: "∫csch(x)dx = -ln|csch(x)+coth(x)| + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "coth",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return Neg(NewPow(Csch(arg), Int(2))) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return Ln(Abs(Sinh(arg)))
			},
			ResultTemplate: "∫coth(x)dx = ln|sinh(x)| + C",
			Constant:       AddConstant,
		},
	})

	onePlusSquare := func(arg Expr) Expr {
		return NewAdd(Int(1), NewPow(arg, Int(2)))
	}

	register(reg, &FunctionProperties{
		Name:  "asinh",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(onePlusSquare(arg), Rat(-1, 2)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, Asinh(arg)), Neg(Sqrt(onePlusSquare(arg))))
			},
			ResultTemplate: "∫asinh(x)dx = x·asinh(x) - sqrt(1+x^2) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "acosh",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewPow(NewAdd(NewPow(arg, Int(2)), Int(-1)), Rat(-1, 2))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(
					NewMul(arg, Acosh(arg)),
					Neg(Sqrt(NewAdd(NewPow(arg, Int(2)), Int(-1)))),
				)
			},
			ResultTemplate: "∫acosh(x)dx = x·acosh(x) - sqrt(x^2-1) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "atanh",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewPow(NewAdd(Int(1), Neg(NewPow(arg, Int(2)))), Int(-1))
			},
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(
					NewMul(arg, Atanh(arg)),
					NewMul(Rat(1, 2), Ln(NewAdd(Int(1), Neg(NewPow(arg, Int(2)))))),
				)
			},
			ResultTemplate: "∫atanh(x)dx = x·atanh(x) + (1/2)ln(1-x^2) + C",
			Constant:       AddConstant,
		},
	})
}
