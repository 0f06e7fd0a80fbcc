package main

import (
	"sort"

	"github.com/antonmedv/expr/ast"

	"gridsheet/contracts"
)

// formulaFunctions are callable names, never cell references.
var formulaFunctions = map[string]struct{}{
	"min": {},
	"max": {},
	"sum": {},
	"avg": {},
}

// CellRefsVisitor collects every identifier that is not a function name
// and rewrites the ones shaped like cell references to their canonical
// uppercase form in place, so the printed tree and the compiled program
// agree on variable names.
type CellRefsVisitor struct {
	identifiers []string
}

func (v *CellRefsVisitor) Visit(node *ast.Node) {
	identifierNode, ok := (*node).(*ast.IdentifierNode)
	if !ok {
		return
	}
	if _, isFunction := formulaFunctions[identifierNode.Value]; isFunction {
		return
	}

	canonical := canonicalizeCellRef(identifierNode.Value)
	if canonical != identifierNode.Value {
		identifierNode.Value = canonical
	}
	v.identifiers = append(v.identifiers, canonical)
}

// canonicalizeCellRef uppercases identifiers shaped as column letters
// followed by digits. Anything else passes through untouched and is
// later reported as an invalid reference by evaluation.
func canonicalizeCellRef(identifier string) string {
	lettersEnd := 0
	for lettersEnd < len(identifier) && upperLetterAt(identifier, lettersEnd) != 0 {
		lettersEnd++
	}
	if lettersEnd == 0 || lettersEnd == len(identifier) {
		return identifier
	}
	for i := lettersEnd; i < len(identifier); i++ {
		if identifier[i] < '0' || identifier[i] > '9' {
			return identifier
		}
	}

	letters := make([]byte, lettersEnd)
	for i := 0; i < lettersEnd; i++ {
		letters[i] = upperLetterAt(identifier, i)
	}
	return string(letters) + identifier[lettersEnd:]
}

func upperLetterAt(identifier string, i int) byte {
	c := identifier[i]
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	if c >= 'A' && c <= 'Z' {
		return c
	}
	return 0
}

// referencedPositions maps deduplicated identifiers to the sorted list
// of valid positions they address. Unparseable identifiers are skipped
// here and surface as evaluation errors instead.
func referencedPositions(identifiers []string) []contracts.Position {
	positions := make([]contracts.Position, 0, len(identifiers))
	for _, identifier := range identifiers {
		pos := contracts.PositionFromString(identifier)
		if pos.IsValid() {
			positions = append(positions, pos)
		}
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})

	deduplicated := positions[:0]
	for _, pos := range positions {
		if len(deduplicated) == 0 || deduplicated[len(deduplicated)-1] != pos {
			deduplicated = append(deduplicated, pos)
		}
	}
	return deduplicated
}
