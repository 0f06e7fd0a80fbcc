package contracts

import "io"

// CellData is the API-facing snapshot of one cell: its A1 reference,
// the raw stored text and the formatted reported value.
type CellData struct {
	Ref   string `json:"ref"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// CellList maps A1 references to cell snapshots.
type CellList map[string]*CellData

type SheetData struct {
	Size  Size     `json:"size"`
	Cells CellList `json:"cells"`
}

// SheetRepository manages named sheets. Sheet ids are case-insensitive.
// SetCell and ClearCell also return the snapshots of the cells that
// transitively depend on the changed cell, in (row, col) order.
type SheetRepository interface {
	SetCell(sheetId string, cellRef string, text string) (*CellData, []*CellData, error)
	GetCell(sheetId string, cellRef string) (*CellData, error)
	ClearCell(sheetId string, cellRef string) (*CellData, []*CellData, error)
	GetSheet(sheetId string) (*SheetData, error)
	RenderValues(sheetId string, out io.Writer) error
	RenderTexts(sheetId string, out io.Writer) error
}
