package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"gridsheet/contracts"
)

// SheetRepository keeps every sheet in memory behind one mutex. Sheet
// ids are case-insensitive, cell references are canonical A1 strings.
type SheetRepository struct {
	mu                sync.Mutex
	sheets            map[string]*Sheet
	webhookDispatcher contracts.WebhookDispatcher
}

func NewSheetRepository(webhookDispatcher contracts.WebhookDispatcher) *SheetRepository {
	return &SheetRepository{
		sheets:            map[string]*Sheet{},
		webhookDispatcher: webhookDispatcher,
	}
}

func (s *SheetRepository) SetCell(sheetId string, cellRef string, text string) (*contracts.CellData, []*contracts.CellData, error) {
	sheetId = strings.ToLower(sheetId)

	pos, err := resolvePosition(cellRef)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, exists := s.sheets[sheetId]
	if !exists {
		sheet = NewSheet()
		s.sheets[sheetId] = sheet
	}

	if err = sheet.SetCell(pos, text); err != nil {
		if !exists {
			delete(s.sheets, sheetId)
		}
		return nil, nil, fmt.Errorf("cell %s: %w", pos.String(), err)
	}

	cell := s.snapshot(sheet, pos)
	affected := s.snapshotAll(sheet, sheet.Dependents(pos))

	s.webhookDispatcher.Notify(sheetId, append([]*contracts.CellData{cell}, affected...))

	return cell, affected, nil
}

func (s *SheetRepository) GetCell(sheetId string, cellRef string) (*contracts.CellData, error) {
	sheetId = strings.ToLower(sheetId)

	pos, err := resolvePosition(cellRef)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, exists := s.sheets[sheetId]
	if !exists {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	cell, err := sheet.GetCell(pos)
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", cellRef, err)
	}
	if cell == nil {
		return nil, fmt.Errorf("%s: %w", cellRef, contracts.CellNotFoundError)
	}

	return s.snapshot(sheet, pos), nil
}

func (s *SheetRepository) ClearCell(sheetId string, cellRef string) (*contracts.CellData, []*contracts.CellData, error) {
	sheetId = strings.ToLower(sheetId)

	pos, err := resolvePosition(cellRef)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, exists := s.sheets[sheetId]
	if !exists {
		return nil, nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	if err = sheet.ClearCell(pos); err != nil {
		return nil, nil, fmt.Errorf("cell %s: %w", cellRef, err)
	}

	cell := s.snapshot(sheet, pos)
	affected := s.snapshotAll(sheet, sheet.Dependents(pos))

	s.webhookDispatcher.Notify(sheetId, append([]*contracts.CellData{cell}, affected...))

	return cell, affected, nil
}

func (s *SheetRepository) GetSheet(sheetId string) (*contracts.SheetData, error) {
	sheetId = strings.ToLower(sheetId)

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, exists := s.sheets[sheetId]
	if !exists {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	data := &contracts.SheetData{
		Size:  sheet.GetPrintableSize(),
		Cells: contracts.CellList{},
	}
	for _, row := range sheet.cells {
		for _, cell := range row {
			if cell == nil || cell.GetText() == "" {
				continue
			}
			data.Cells[cell.pos.String()] = s.snapshot(sheet, cell.pos)
		}
	}

	return data, nil
}

func (s *SheetRepository) RenderValues(sheetId string, out io.Writer) error {
	return s.render(sheetId, out, (*Sheet).PrintValues)
}

func (s *SheetRepository) RenderTexts(sheetId string, out io.Writer) error {
	return s.render(sheetId, out, (*Sheet).PrintTexts)
}

func (s *SheetRepository) render(sheetId string, out io.Writer, print func(*Sheet, io.Writer) error) error {
	sheetId = strings.ToLower(sheetId)

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, exists := s.sheets[sheetId]
	if !exists {
		return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	return print(sheet, out)
}

func (s *SheetRepository) snapshot(sheet *Sheet, pos contracts.Position) *contracts.CellData {
	data := &contracts.CellData{Ref: pos.String()}

	cell := sheet.cellAt(pos)
	if cell != nil {
		data.Text = cell.GetText()
		data.Value = contracts.FormatValue(cell.GetValue())
	}
	return data
}

func (s *SheetRepository) snapshotAll(sheet *Sheet, positions []contracts.Position) []*contracts.CellData {
	cells := make([]*contracts.CellData, 0, len(positions))
	for _, pos := range positions {
		cells = append(cells, s.snapshot(sheet, pos))
	}
	return cells
}

func resolvePosition(cellRef string) (contracts.Position, error) {
	pos := contracts.PositionFromString(cellRef)
	if !pos.IsValid() {
		return pos, fmt.Errorf("cell_id `%s`: %w", cellRef, contracts.InvalidPositionError)
	}
	return pos, nil
}
