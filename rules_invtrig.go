package gocalc

// Inverse trigonometric family. Every antiderivative here is a by-parts
// result (u = asin x, dv = dx, …) stored as a precomputed closed form.
// asec and acsc are registered derivative-only: their antiderivatives need
// inverse-hyperbolic forms with branch handling this engine does not model,
// so integrating them yields the explicit unevaluated wrapper.
func registerInverseTrig(reg map[string]*FunctionProperties) {
	oneMinusSquare := func(arg Expr) Expr {
		return NewAdd(Int(1), Neg(NewPow(arg, Int(2))))
	}
	onePlusSquare := func(arg Expr) Expr {
		return NewAdd(Int(1), NewPow(arg, Int(2)))
	}

	register(reg, &FunctionProperties{
		Name:  "asin",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(oneMinusSquare(arg), Rat(-1, 2)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, Asin(arg)), Sqrt(oneMinusSquare(arg)))
			},
			ResultTemplate: "∫asin(x)dx = x·asin(x) + sqrt(1-x^2) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "acos",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return Neg(NewPow(oneMinusSquare(arg), Rat(-1, 2))) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, Acos(arg)), Neg(Sqrt(oneMinusSquare(arg))))
			},
			ResultTemplate: "∫acos(x)dx = x·acos(x) - sqrt(1-x^2) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "atan",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return NewPow(onePlusSquare(arg), Int(-1)) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, Atan(arg)), NewMul(Rat(-1, 2), Ln(onePlusSquare(arg))))
			},
			ResultTemplate: "∫atan(x)dx = x·atan(x) - (1/2)ln(1+x^2) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "acot",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind:  DerivCustom,
			Build: func(arg Expr) Expr { return Neg(NewPow(onePlusSquare(arg), Int(-1))) },
		},
		Antiderivative: &AntiderivativeRule{
			Kind: AntiderivCustom,
			Build: func(arg Expr) Expr {
				return NewAdd(NewMul(arg, Acot(arg)), NewMul(Rat(1, 2), Ln(onePlusSquare(arg))))
			},
			ResultTemplate: "∫acot(x)dx = x·acot(x) + (1/2)ln(1+x^2) + C",
			Constant:       AddConstant,
		},
	})

	register(reg, &FunctionProperties{
		Name:  "asec",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return NewMul(
					NewPow(Abs(arg), Int(-1)),
					NewPow(NewAdd(NewPow(arg, Int(2)), Int(-1)), Rat(-1, 2)),
				)
			},
		},
	})

	register(reg, &FunctionProperties{
		Name:  "acsc",
		Class: Elementary,
		Derivative: &DerivativeRule{
			Kind: DerivCustom,
			Build: func(arg Expr) Expr {
				return Neg(NewMul(
					NewPow(Abs(arg), Int(-1)),
					NewPow(NewAdd(NewPow(arg, Int(2)), Int(-1)), Rat(-1, 2)),
				))
			},
		},
	})
}
