package gocalc

import (
	"fmt"
	"sort"
	"sync"
)

// ============================================================
// Function Intelligence Registry
//
// A process-wide, read-only table mapping function names to their known
// calculus. Both engines consult it generically: registering a new function
// is pure data, and requires no engine edits. The table is populated exactly
// once (lazily, on first lookup) and never mutates afterward, so concurrent
// lookups need no locking.
// ============================================================

// FunctionClass classifies a registered function.
type FunctionClass int

const (
	Elementary FunctionClass = iota
	Special
	Polynomial
	UserDefined
)

func (c FunctionClass) String() string {
	switch c {
	case Elementary:
		return "elementary"
	case Special:
		return "special"
	case Polynomial:
		return "polynomial"
	case UserDefined:
		return "user-defined"
	}
	return fmt.Sprintf("FunctionClass(%d)", int(c))
}

// DerivativeRuleKind tags the strategy stored for a derivative.
type DerivativeRuleKind int

const (
	// DerivSimple: d/dx f = coefficient·target, for bare-symbol arguments.
	DerivSimple DerivativeRuleKind = iota
	// DerivChain: same shape, composite-capable; the engine multiplies by
	// the inner derivative.
	DerivChain
	// DerivProduct: f is defined as U·V of two registered functions.
	DerivProduct
	// DerivQuotient: f is defined as U/V of two registered functions.
	DerivQuotient
	// DerivCustom: the outer derivative is built by a closure.
	DerivCustom
)

// DerivativeRule describes how to differentiate one registered function.
type DerivativeRule struct {
	Kind        DerivativeRuleKind
	Target      string  // Simple/Chain: name of the derivative function
	Coefficient *Number // optional scalar on Target; nil means 1
	U, V        string  // Product/Quotient: component function names
	Build       func(arg Expr) Expr
}

// ConstantOfIntegration tags who accounts for the +C of an antiderivative.
// This core never adds one; the tag is consumed by callers.
type ConstantOfIntegration int

const (
	AddConstant ConstantOfIntegration = iota
	DefiniteIntegral
	UserHandled
)

// AntiderivativeRuleKind tags the strategy stored for an antiderivative.
type AntiderivativeRuleKind int

const (
	// AntiderivSimple: ∫f dx = Coefficient·Target(x), Target registered.
	AntiderivSimple AntiderivativeRuleKind = iota
	// AntiderivCustom: the closed form is built by a closure — used for
	// by-parts results (ln, arcsin, sec…) that are not a scalar multiple of
	// a single named function. The by-parts work happened when the rule was
	// written, never at call time.
	AntiderivCustom
)

// AntiderivativeRule describes how to integrate one registered function.
type AntiderivativeRule struct {
	Kind        AntiderivativeRuleKind
	Target      string
	Coefficient *Number
	Build       func(arg Expr) Expr

	// ResultTemplate is documentation only; engines never parse it.
	ResultTemplate string
	Constant       ConstantOfIntegration
}

// FunctionProperties is everything the registry knows about one name.
// Only Elementary and Special entries carry calculus rules.
type FunctionProperties struct {
	Name           string
	Class          FunctionClass
	Derivative     *DerivativeRule
	Antiderivative *AntiderivativeRule
}

var (
	registryOnce sync.Once
	registry     map[string]*FunctionProperties
)

func defaultRegistry() map[string]*FunctionProperties {
	registryOnce.Do(func() {
		reg := map[string]*FunctionProperties{}
		registerTrig(reg)
		registerInverseTrig(reg)
		registerExpLog(reg)
		registerHyperbolic(reg)
		registerSpecial(reg)
		registry = reg
	})
	return registry
}

// Lookup returns the registered properties for a function name.
func Lookup(name string) (*FunctionProperties, bool) {
	p, ok := defaultRegistry()[name]
	return p, ok
}

// Functions returns every registered name, sorted.
func Functions() []string {
	reg := defaultRegistry()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// register validates and installs one entry. Malformed rules are programmer
// errors caught at population time — they can never surface during
// Differentiate or Integrate calls.
func register(reg map[string]*FunctionProperties, p *FunctionProperties) {
	if p.Name == "" {
		panic("gocalc: registering a function with no name")
	}
	if _, dup := reg[p.Name]; dup {
		panic("gocalc: duplicate registration for " + p.Name)
	}
	if d := p.Derivative; d != nil {
		switch d.Kind {
		case DerivSimple, DerivChain:
			if d.Target == "" {
				panic("gocalc: " + p.Name + ": simple derivative rule needs a target")
			}
			if d.Coefficient != nil && d.Coefficient.IsZero() {
				panic("gocalc: " + p.Name + ": zero derivative coefficient")
			}
		case DerivProduct, DerivQuotient:
			if d.U == "" || d.V == "" {
				panic("gocalc: " + p.Name + ": structural derivative rule needs both components")
			}
		case DerivCustom:
			if d.Build == nil {
				panic("gocalc: " + p.Name + ": custom derivative rule needs a builder")
			}
		}
	}
	if a := p.Antiderivative; a != nil {
		switch a.Kind {
		case AntiderivSimple:
			if a.Target == "" {
				panic("gocalc: " + p.Name + ": simple antiderivative rule needs a target")
			}
			if a.Coefficient != nil && a.Coefficient.IsZero() {
				panic("gocalc: " + p.Name + ": zero antiderivative coefficient")
			}
		case AntiderivCustom:
			if a.Build == nil {
				panic("gocalc: " + p.Name + ": custom antiderivative rule needs a builder")
			}
		}
	}
	reg[p.Name] = p
}
