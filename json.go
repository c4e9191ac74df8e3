package gocalc

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// ============================================================
// JSON codec
//
// A tagged-map wire format: every node is {"type": ...} plus its payload.
// Numbers travel as exact rational strings ("p/q" or "n"), never as JSON
// floats, so a round trip loses nothing.
// ============================================================

// ToJSON serializes an expression tree.
func ToJSON(e Expr) ([]byte, error) {
	return json.Marshal(e.toJSON())
}

// FromJSON reconstructs an expression tree.
func FromJSON(data []byte) (Expr, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("gocalc: invalid expression JSON: %w", err)
	}
	return exprFromMap(raw)
}

func (n *Number) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "number", "value": n.val.RatString()}
}

func (s *Symbol) toJSON() map[string]interface{} {
	m := map[string]interface{}{"type": "symbol", "name": s.name}
	if s.kind != Scalar {
		m["kind"] = s.kind.String()
	}
	return m
}

func (a *Add) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "add", "terms": childList(a.terms)}
}

func (m *Mul) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "mul", "factors": childList(m.factors)}
}

func (p *Pow) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type": "pow",
		"base": p.base.toJSON(),
		"exp":  p.exp.toJSON(),
	}
}

func (f *Function) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type": "func",
		"name": f.name,
		"args": childList(f.args),
	}
}

func (in *Integral) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type":      "integral",
		"integrand": in.integrand.toJSON(),
		"var":       in.sym.toJSON(),
	}
}

func (d *Derivative) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type": "derivative",
		"expr": d.expr.toJSON(),
		"var":  d.sym.toJSON(),
	}
}

func childList(es []Expr) []interface{} {
	out := make([]interface{}, len(es))
	for i, e := range es {
		out[i] = e.toJSON()
	}
	return out
}

func exprFromMap(raw map[string]interface{}) (Expr, error) {
	typ, _ := raw["type"].(string)
	switch typ {
	case "number":
		v, _ := raw["value"].(string)
		r, ok := new(big.Rat).SetString(v)
		if !ok {
			return nil, fmt.Errorf("gocalc: bad rational %q", v)
		}
		return &Number{val: r}, nil

	case "symbol":
		name, _ := raw["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("gocalc: symbol with no name")
		}
		kind := Scalar
		if k, present := raw["kind"].(string); present {
			var err error
			if kind, err = symbolKindFromString(k); err != nil {
				return nil, err
			}
		}
		return &Symbol{name: name, kind: kind}, nil

	case "add":
		terms, err := childExprs(raw["terms"])
		if err != nil {
			return nil, err
		}
		return NewAdd(terms...), nil

	case "mul":
		factors, err := childExprs(raw["factors"])
		if err != nil {
			return nil, err
		}
		return NewMul(factors...), nil

	case "pow":
		base, err := childExpr(raw["base"])
		if err != nil {
			return nil, err
		}
		exp, err := childExpr(raw["exp"])
		if err != nil {
			return nil, err
		}
		return NewPow(base, exp), nil

	case "func":
		name, _ := raw["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("gocalc: function with no name")
		}
		args, err := childExprs(raw["args"])
		if err != nil {
			return nil, err
		}
		return NewFunction(name, args...), nil

	case "integral":
		integrand, err := childExpr(raw["integrand"])
		if err != nil {
			return nil, err
		}
		sym, err := childSymbol(raw["var"])
		if err != nil {
			return nil, err
		}
		return NewIntegral(integrand, sym), nil

	case "derivative":
		expr, err := childExpr(raw["expr"])
		if err != nil {
			return nil, err
		}
		sym, err := childSymbol(raw["var"])
		if err != nil {
			return nil, err
		}
		return NewDerivative(expr, sym), nil
	}
	return nil, fmt.Errorf("gocalc: unknown node type %q", typ)
}

func childExpr(v interface{}) (Expr, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("gocalc: expected an object node, got %T", v)
	}
	return exprFromMap(m)
}

func childExprs(v interface{}) ([]Expr, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("gocalc: expected a node list, got %T", v)
	}
	out := make([]Expr, len(list))
	for i, item := range list {
		e, err := childExpr(item)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func childSymbol(v interface{}) (*Symbol, error) {
	e, err := childExpr(v)
	if err != nil {
		return nil, err
	}
	s, ok := e.(*Symbol)
	if !ok {
		return nil, fmt.Errorf("gocalc: bound variable must be a symbol, got %s", e)
	}
	return s, nil
}

func symbolKindFromString(s string) (SymbolType, error) {
	switch s {
	case "scalar":
		return Scalar, nil
	case "matrix":
		return Matrix, nil
	case "operator":
		return Operator, nil
	case "quaternion":
		return Quaternion, nil
	}
	return Scalar, fmt.Errorf("gocalc: unknown symbol kind %q", s)
}
