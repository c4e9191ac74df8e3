package gocalc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocalc "github.com/njchilds90/gocalc"
)

func exprParam(t *testing.T, e gocalc.Expr) map[string]interface{} {
	t.Helper()
	data, err := gocalc.ToJSON(e)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestTool_Simplify(t *testing.T) {
	x := gocalc.Var("x")
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool:   "simplify",
		Params: map[string]interface{}{"expr": exprParam(t, gocalc.NewAdd(x, x))},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "2*x", resp.String)
}

func TestTool_Diff(t *testing.T) {
	x := gocalc.Var("x")
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool: "diff",
		Params: map[string]interface{}{
			"expr": exprParam(t, gocalc.Sin(x)),
			"var":  "x",
		},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "cos(x)", resp.String)
}

func TestTool_DiffN(t *testing.T) {
	x := gocalc.Var("x")
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool: "diffn",
		Params: map[string]interface{}{
			"expr": exprParam(t, gocalc.NewPow(x, gocalc.Int(4))),
			"var":  "x",
			"n":    float64(4),
		},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "24", resp.String)
}

func TestTool_Integrate(t *testing.T) {
	x := gocalc.Var("x")
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool: "integrate",
		Params: map[string]interface{}{
			"expr": exprParam(t, gocalc.Cos(x)),
			"var":  "x",
		},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "sin(x)", resp.String)
}

func TestTool_IntegrateUnmatchedReturnsWrapper(t *testing.T) {
	x := gocalc.Var("x")
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool: "integrate",
		Params: map[string]interface{}{
			"expr": exprParam(t, gocalc.NewFunction("mystery", x)),
			"var":  "x",
		},
	})
	// "No rule" is a result, not an error.
	assert.Empty(t, resp.Error)
	assert.Equal(t, "integral(mystery(x), x)", resp.String)
}

func TestTool_Substitute(t *testing.T) {
	x := gocalc.Var("x")
	linear := gocalc.NewAdd(gocalc.NewMul(gocalc.Int(2), x), gocalc.Int(3))
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool: "substitute",
		Params: map[string]interface{}{
			"expr":  exprParam(t, linear),
			"var":   "x",
			"value": exprParam(t, gocalc.Int(5)),
		},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "13", resp.String)
}

func TestTool_FreeSymbols(t *testing.T) {
	x, y := gocalc.Var("x"), gocalc.Var("y")
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool:   "free_symbols",
		Params: map[string]interface{}{"expr": exprParam(t, gocalc.NewMul(y, gocalc.Sin(x)))},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, "x, y", resp.String)
}

func TestTool_ToLaTeX(t *testing.T) {
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool:   "to_latex",
		Params: map[string]interface{}{"expr": exprParam(t, gocalc.Rat(2, 5))},
	})
	assert.Empty(t, resp.Error)
	assert.Equal(t, `\frac{2}{5}`, resp.LaTeX)
}

func TestTool_Functions(t *testing.T) {
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{Tool: "functions"})
	assert.Empty(t, resp.Error)
	assert.Contains(t, resp.String, "sin")
	assert.Contains(t, resp.String, "atanh")
}

func TestTool_MissingParam(t *testing.T) {
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{Tool: "simplify"})
	assert.Equal(t, "missing param: expr", resp.Error)
}

func TestTool_WrongParamType(t *testing.T) {
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{
		Tool:   "simplify",
		Params: map[string]interface{}{"expr": "not an object"},
	})
	assert.NotEmpty(t, resp.Error)
}

func TestTool_UnknownTool(t *testing.T) {
	resp := gocalc.HandleToolCall(gocalc.ToolRequest{Tool: "frobnicate"})
	assert.Equal(t, "unknown tool: frobnicate", resp.Error)
}

func TestToolSpec_ListsEveryTool(t *testing.T) {
	var spec struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(gocalc.ToolSpec()), &spec))
	names := make([]string, len(spec.Tools))
	for i, tool := range spec.Tools {
		names[i] = tool.Name
	}
	for _, want := range []string{
		"simplify", "diff", "diff2", "diffn", "integrate",
		"substitute", "free_symbols", "to_latex", "functions", "tool_spec",
	} {
		assert.Contains(t, names, want)
	}
}
