package rowstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets is a Store backed by a Google spreadsheet, one sheet per table.
// The spreadsheet is expected to exist with header rows already in place.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

// NewSheets connects to the Google Sheets API using a service-account
// credentials file.
func NewSheets(ctx context.Context, spreadsheetID, credentialsFile string, log zerolog.Logger) (*Sheets, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	s := &Sheets{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		log:           log.With().Str("component", "rowstore").Str("backend", "sheets").Logger(),
	}
	s.log.Info().Str("spreadsheet_id", spreadsheetID).Msg("Sheets row store ready")
	return s, nil
}

// GetAll implements Store.
func (s *Sheets) GetAll(ctx context.Context, table string) ([]Record, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, fmt.Sprintf("%s!A1:Z", table)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", table, err)
	}

	if len(resp.Values) == 0 {
		return []Record{}, nil
	}

	headers := cellStrings(resp.Values[0])
	records := make([]Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		records = append(records, rowRecord(headers, cellStrings(row)))
	}
	return records, nil
}

// Append implements Store.
func (s *Sheets) Append(ctx context.Context, table string, records []Record) error {
	headers, err := s.headerRow(ctx, table)
	if err != nil {
		return err
	}

	values := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		values = append(values, cellValues(recordValues(headers, rec)))
	}

	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!A:Z", table), &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet %s: %w", table, err)
	}
	return nil
}

// UpdateRow implements Store.
func (s *Sheets) UpdateRow(ctx context.Context, table string, rowNumber int, rec Record) error {
	headers, err := s.headerRow(ctx, table)
	if err != nil {
		return err
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{cellValues(recordValues(headers, rec))}}
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("%s!A%d:Z%d", table, rowNumber, rowNumber), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update sheet %s row %d: %w", table, rowNumber, err)
	}
	return nil
}

// DeleteRow implements Store.
func (s *Sheets) DeleteRow(ctx context.Context, table string, rowNumber int) error {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to load spreadsheet: %w", err)
	}

	var sheetID int64 = -1
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == table {
			sheetID = sh.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return fmt.Errorf("sheet %s not found", table)
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete sheet %s row %d: %w", table, rowNumber, err)
	}
	return nil
}

// headerRow reads the current column order of a sheet.
func (s *Sheets) headerRow(ctx context.Context, table string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, fmt.Sprintf("%s!A1:Z1", table)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s headers: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", table)
	}
	return cellStrings(resp.Values[0]), nil
}

func cellStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func cellValues(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
