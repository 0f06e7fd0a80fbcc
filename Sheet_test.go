package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsheet/contracts"
)

func TestSheetSetAndGetCell(t *testing.T) {
	t.Run("get from untouched slot returns nil cell", func(t *testing.T) {
		sheet := NewSheet()

		cell, err := sheet.GetCell(contracts.Position{Row: 100, Col: 100})
		assert.NoError(t, err)
		assert.Nil(t, cell)
	})

	t.Run("invalid position is rejected everywhere", func(t *testing.T) {
		sheet := NewSheet()
		invalid := contracts.Position{Row: -1, Col: 0}

		assert.ErrorIs(t, sheet.SetCell(invalid, "1"), contracts.InvalidPositionError)
		assert.ErrorIs(t, sheet.ClearCell(invalid), contracts.InvalidPositionError)

		_, err := sheet.GetCell(contracts.Position{Row: contracts.MaxRows, Col: 0})
		assert.ErrorIs(t, err, contracts.InvalidPositionError)
	})

	t.Run("overwrite replaces content", func(t *testing.T) {
		sheet := NewSheet()
		pos := contracts.Position{Row: 2, Col: 3}

		assert.NoError(t, sheet.SetCell(pos, "text"))
		assert.NoError(t, sheet.SetCell(pos, "=2*2"))

		cell := mustCell(t, sheet, pos)
		assert.Equal(t, 4.0, cell.GetValue())
	})
}

func TestSheetPrintableSize(t *testing.T) {
	t.Run("empty sheet", func(t *testing.T) {
		assert.Equal(t, contracts.Size{}, NewSheet().GetPrintableSize())
	})

	t.Run("grows to the bounding rectangle", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 2, Col: 0}, "x"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 4}, "y"))

		assert.Equal(t, contracts.Size{Rows: 3, Cols: 5}, sheet.GetPrintableSize())
	})

	t.Run("shrinks when boundary cells are cleared", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "a"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 5, Col: 5}, "b"))
		assert.Equal(t, contracts.Size{Rows: 6, Cols: 6}, sheet.GetPrintableSize())

		assert.NoError(t, sheet.ClearCell(contracts.Position{Row: 5, Col: 5}))
		assert.Equal(t, contracts.Size{Rows: 1, Cols: 1}, sheet.GetPrintableSize())

		assert.NoError(t, sheet.ClearCell(contracts.Position{Row: 0, Col: 0}))
		assert.Equal(t, contracts.Size{}, sheet.GetPrintableSize())
	})

	t.Run("setting empty text extends the region like any write", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "a"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 3, Col: 3}, ""))
		assert.Equal(t, contracts.Size{Rows: 4, Cols: 4}, sheet.GetPrintableSize())

		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 3, Col: 3}, "b"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 3, Col: 3}, ""))
		assert.Equal(t, contracts.Size{Rows: 4, Cols: 4}, sheet.GetPrintableSize())

		assert.NoError(t, sheet.ClearCell(contracts.Position{Row: 3, Col: 3}))
		assert.Equal(t, contracts.Size{Rows: 1, Cols: 1}, sheet.GetPrintableSize())
	})

	t.Run("cells materialized by references extend the region", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "=J10"))

		assert.Equal(t, contracts.Size{Rows: 10, Cols: 10}, sheet.GetPrintableSize())
	})
}

func TestSheetPrint(t *testing.T) {
	buildSheet := func(t *testing.T) *Sheet {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "2"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 1}, "=A1+1"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 1, Col: 0}, "'=escaped"))
		return sheet
	}

	t.Run("values", func(t *testing.T) {
		out := &bytes.Buffer{}
		assert.NoError(t, buildSheet(t).PrintValues(out))

		assert.Equal(t, "2\t3\n=escaped\t\n", out.String())
	})

	t.Run("texts", func(t *testing.T) {
		out := &bytes.Buffer{}
		assert.NoError(t, buildSheet(t).PrintTexts(out))

		assert.Equal(t, "2\t=A1 + 1\n'=escaped\t\n", out.String())
	})

	t.Run("error values print their code", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "=1/0"))

		out := &bytes.Buffer{}
		assert.NoError(t, sheet.PrintValues(out))
		assert.Equal(t, "#DIV/0!\n", out.String())
	})
}

func TestSheetDependents(t *testing.T) {
	t.Run("transitive closure in row col order", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "1"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 1, Col: 1}, "=A1+1"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 1}, "=B2*2"))
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 2, Col: 0}, "=A1-1"))

		dependents := sheet.Dependents(contracts.Position{Row: 0, Col: 0})

		assert.Equal(t, []contracts.Position{
			{Row: 0, Col: 1},
			{Row: 1, Col: 1},
			{Row: 2, Col: 0},
		}, dependents)
	})

	t.Run("no dependents", func(t *testing.T) {
		sheet := NewSheet()
		assert.NoError(t, sheet.SetCell(contracts.Position{Row: 0, Col: 0}, "1"))

		assert.Empty(t, sheet.Dependents(contracts.Position{Row: 0, Col: 0}))
		assert.Empty(t, sheet.Dependents(contracts.Position{Row: 5, Col: 5}))
	})
}
