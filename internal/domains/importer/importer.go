package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"dictionary-backend/internal/domains/name"
	"dictionary-backend/internal/domains/name/model"
)

// Importer turns an uploaded spreadsheet into name entries. File-level and
// row-level failures are both reported through the ImportStatus; the import
// never aborts the surrounding request with a fault.
type Importer interface {
	// DoImport reads the workbook at path and feeds each data row through
	// the name service's duplicate-resolution insert. Rows are processed
	// independently; one bad row does not stop the rest.
	DoImport(ctx context.Context, path string) *ImportStatus
}

// xlsxImporter reads .xlsx workbooks with excelize. The first row of the
// first sheet is the header; recognized columns (case-insensitive) are
// name, pronunciation, meaning, extendedMeaning, morphology, etymology,
// tonalMark, syllables, variants, geoLocation, submittedBy. Etymology cells
// hold semicolon-separated segments.
type xlsxImporter struct {
	names   name.Service
	maxRows int
}

func NewXlsxImporter(names name.Service, maxRows int) Importer {
	return &xlsxImporter{names: names, maxRows: maxRows}
}

func (im *xlsxImporter) DoImport(ctx context.Context, path string) *ImportStatus {
	status := &ImportStatus{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		status.AddError(fmt.Sprintf("failed to open spreadsheet: %v", err))
		return status
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		status.AddError("spreadsheet has no sheets")
		return status
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		status.AddError(fmt.Sprintf("failed to read sheet %q: %v", sheet, err))
		return status
	}
	if len(rows) < 2 {
		status.AddError("spreadsheet has no data rows")
		return status
	}

	header := buildColumnIndexMap(rows[0])
	if _, ok := header["name"]; !ok {
		status.AddError("spreadsheet is missing the required 'name' column")
		return status
	}

	dataRows := rows[1:]
	status.TotalRows = len(dataRows)
	if im.maxRows > 0 && len(dataRows) > im.maxRows {
		status.AddError(fmt.Sprintf("spreadsheet exceeds the %d row limit", im.maxRows))
		return status
	}

	log.Info().
		Str("sheet", sheet).
		Int("rows", len(dataRows)).
		Msg("Starting spreadsheet import")

	for i, record := range dataRows {
		rowNum := i + 2 // 1-based, after the header

		entry, err := parseRow(record, header)
		if err != nil {
			status.AddError(fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if _, err := im.names.CreateOrDuplicate(ctx, entry); err != nil {
			status.AddError(fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		status.ImportedRows++
	}

	log.Info().
		Int("imported", status.ImportedRows).
		Int("failed", len(status.ErrorMessages)).
		Msg("Spreadsheet import finished")

	return status
}

func buildColumnIndexMap(header []string) map[string]int {
	colMap := make(map[string]int, len(header))
	for i, colName := range header {
		colMap[strings.ToLower(strings.TrimSpace(colName))] = i
	}
	return colMap
}

func parseRow(record []string, colMap map[string]int) (*model.NameEntry, error) {
	getCol := func(col string) string {
		if idx, ok := colMap[col]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	nm := getCol("name")
	if nm == "" {
		return nil, fmt.Errorf("name is required")
	}

	entry := &model.NameEntry{
		Name:            nm,
		Pronunciation:   getCol("pronunciation"),
		Meaning:         getCol("meaning"),
		ExtendedMeaning: getCol("extendedmeaning"),
		Morphology:      getCol("morphology"),
		TonalMark:       getCol("tonalmark"),
		Syllables:       getCol("syllables"),
		Variants:        getCol("variants"),
		SubmittedBy:     getCol("submittedby"),
	}

	if raw := getCol("etymology"); raw != "" {
		for _, part := range strings.Split(raw, ";") {
			if part = strings.TrimSpace(part); part != "" {
				entry.Etymology = append(entry.Etymology, part)
			}
		}
	}

	if place := getCol("geolocation"); place != "" {
		entry.GeoLocation = &model.GeoLocation{Place: place}
	}

	return entry, nil
}
