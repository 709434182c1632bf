package query

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/document"
	"github.com/zclconf/go-cty/cty"
)

// Eval parses src as an HCL expression and evaluates it against m.
func Eval[P, Q any](m *hef.Model[P, Q], src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<expr>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse expression: %w", diags)
	}

	vars, err := Variables(m)
	if err != nil {
		return cty.NilVal, err
	}

	val, diags := expr.Value(&hcl.EvalContext{
		Variables: vars,
		Functions: functions,
	})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	return val, nil
}

// Format renders an evaluation result as single-line JSON.
func Format(v cty.Value) (string, error) {
	return document.FromValue(v).JSON()
}
