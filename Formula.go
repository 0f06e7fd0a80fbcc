package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/ast"
	"github.com/antonmedv/expr/parser"
	"github.com/antonmedv/expr/vm"

	"gridsheet/contracts"
)

var formulaCompileOptions = []expr.Option{
	expr.Env(map[string]any{}),
	expr.AllowUndefinedVariables(),
	expr.Optimize(false),
	expr.DisableAllBuiltins(),
	maxFunction,
	minFunction,
	sumFunction,
	avgFunction,
}

var formulaVmPool = sync.Pool{
	New: func() any {
		return new(vm.VM)
	},
}

// Formula is a compiled expression. The stored expression is the
// canonical printed form of the parse tree, with cell references
// uppercased, so two formulas spelled differently but meaning the same
// print identically.
type Formula struct {
	program     *vm.Program
	expression  string
	identifiers []string
	referenced  []contracts.Position
}

// ParseFormula compiles the expression text without the leading
// formula sign. Unparseable text comes back wrapped in
// FormulaSyntaxError.
func ParseFormula(text string) (*Formula, error) {
	tree, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.FormulaSyntaxError, err)
	}

	visitor := &CellRefsVisitor{}
	ast.Walk(&tree.Node, visitor)

	canonical := tree.Node.String()
	program, err := expr.Compile(canonical, formulaCompileOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.FormulaSyntaxError, err)
	}

	identifiers := uniqueStrings(visitor.identifiers)

	return &Formula{
		program:     program,
		expression:  canonical,
		identifiers: identifiers,
		referenced:  referencedPositions(identifiers),
	}, nil
}

func (f *Formula) GetExpression() string {
	return f.expression
}

func (f *Formula) GetReferencedCells() []contracts.Position {
	return f.referenced
}

// Evaluate binds every referenced cell to its numeric value, then runs
// the compiled program. Faults come back as FormulaError values, never
// as panics or Go errors.
func (f *Formula) Evaluate(sheet contracts.SheetReader) (float64, *contracts.FormulaError) {
	vars := make(map[string]any, len(f.identifiers))
	for _, identifier := range f.identifiers {
		pos := contracts.PositionFromString(identifier)
		if !pos.IsValid() {
			return 0, contracts.NewFormulaError(contracts.FormulaErrorRef)
		}

		cell, err := sheet.GetCell(pos)
		if err != nil {
			return 0, contracts.NewFormulaError(contracts.FormulaErrorRef)
		}

		value, formulaErr := numericCellValue(cell)
		if formulaErr != nil {
			return 0, formulaErr
		}
		vars[identifier] = value
	}

	v := formulaVmPool.Get().(*vm.VM)
	out, err := v.Run(f.program, vars)
	formulaVmPool.Put(v)
	if err != nil {
		return 0, contracts.NewFormulaError(categorizeRunError(err))
	}

	result, ok := toFloat(out)
	if !ok {
		return 0, contracts.NewFormulaError(contracts.FormulaErrorValue)
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, contracts.NewFormulaError(contracts.FormulaErrorDiv0)
	}
	return result, nil
}

// numericCellValue coerces a referenced cell to a number: missing and
// empty cells count as zero, numeric text parses, anything else is a
// value fault. Errors cached in the referenced cell propagate as is.
func numericCellValue(cell contracts.Cell) (float64, *contracts.FormulaError) {
	if cell == nil {
		return 0, nil
	}

	switch value := cell.GetValue().(type) {
	case float64:
		return value, nil
	case contracts.FormulaError:
		return 0, &value
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, nil
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, contracts.NewFormulaError(contracts.FormulaErrorValue)
		}
		return number, nil
	}
	return 0, contracts.NewFormulaError(contracts.FormulaErrorValue)
}

func categorizeRunError(err error) contracts.FormulaErrorCategory {
	message := strings.ToLower(err.Error())
	if strings.Contains(message, "divide") || strings.Contains(message, "division") {
		return contracts.FormulaErrorDiv0
	}
	return contracts.FormulaErrorValue
}

func toFloat(out any) (float64, bool) {
	switch v := out.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}
