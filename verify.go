package gocalc

import "fmt"

// VerifyRegistry checks the fundamental theorem of calculus against every
// registered antiderivative: for each rule, Simplify(d/dx ∫f(x)dx) must
// come back as f(x) exactly. Run it from tests or at startup — it is a
// health check on the rule tables, never part of evaluating an integral.
func VerifyRegistry() error {
	x := Var("x")
	for _, name := range Functions() {
		props, _ := Lookup(name)
		if props.Antiderivative == nil {
			continue
		}
		f := NewFunction(name, x)
		anti := Integrate(f, x)
		if _, unevaluated := anti.(*Integral); unevaluated {
			return fmt.Errorf("gocalc: %s has an antiderivative rule the engine did not apply", name)
		}
		back := Simplify(Differentiate(anti, x))
		if !back.Equal(f) {
			return fmt.Errorf("gocalc: round trip failed for %s: d/dx %s simplified to %s, want %s",
				name, anti, back, f)
		}
	}
	return nil
}
