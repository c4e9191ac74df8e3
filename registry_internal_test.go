package gocalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_RejectsEmptyName(t *testing.T) {
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{})
	})
}

func TestRegister_RejectsDuplicate(t *testing.T) {
	reg := map[string]*FunctionProperties{}
	register(reg, &FunctionProperties{Name: "f", Class: UserDefined})
	assert.Panics(t, func() {
		register(reg, &FunctionProperties{Name: "f", Class: UserDefined})
	})
}

func TestRegister_RejectsSimpleRuleWithoutTarget(t *testing.T) {
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{
			Name:       "f",
			Derivative: &DerivativeRule{Kind: DerivSimple},
		})
	})
}

func TestRegister_RejectsZeroCoefficient(t *testing.T) {
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{
			Name: "f",
			Derivative: &DerivativeRule{
				Kind:        DerivSimple,
				Target:      "g",
				Coefficient: Int(0),
			},
		})
	})
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{
			Name: "f",
			Antiderivative: &AntiderivativeRule{
				Kind:        AntiderivSimple,
				Target:      "g",
				Coefficient: Int(0),
			},
		})
	})
}

func TestRegister_RejectsCustomRuleWithoutBuilder(t *testing.T) {
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{
			Name:       "f",
			Derivative: &DerivativeRule{Kind: DerivCustom},
		})
	})
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{
			Name:           "f",
			Antiderivative: &AntiderivativeRule{Kind: AntiderivCustom},
		})
	})
}

func TestRegister_RejectsStructuralRuleMissingComponent(t *testing.T) {
	assert.Panics(t, func() {
		register(map[string]*FunctionProperties{}, &FunctionProperties{
			Name:       "f",
			Derivative: &DerivativeRule{Kind: DerivQuotient, U: "cos"},
		})
	})
}

func TestRegister_AcceptsEntryWithoutRules(t *testing.T) {
	reg := map[string]*FunctionProperties{}
	assert.NotPanics(t, func() {
		register(reg, &FunctionProperties{Name: "opaque", Class: Special})
	})
	assert.Contains(t, reg, "opaque")
}
