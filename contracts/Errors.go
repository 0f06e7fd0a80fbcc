package contracts

import "errors"

var InvalidPositionError = errors.New("invalid cell position")

var CircularDependencyError = errors.New("circular dependency detected")

var FormulaSyntaxError = errors.New("formula syntax error")

var CellNotFoundError = errors.New("cell not found")

var SheetNotFoundError = errors.New("sheet not found")
