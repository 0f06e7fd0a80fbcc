package contracts

// Formula is a parsed expression bound to evaluation against a sheet,
// its canonical printed form, and the set of positions it references.
type Formula interface {
	// Evaluate executes the expression against the sheet. The second
	// return is nil on success; evaluation faults come back as values.
	Evaluate(sheet SheetReader) (float64, *FormulaError)

	// GetExpression returns the canonical printed form, without the
	// leading formula sign.
	GetExpression() string

	// GetReferencedCells returns the valid referenced positions sorted
	// ascending and deduplicated.
	GetReferencedCells() []Position
}
