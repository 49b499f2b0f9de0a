// Package sheets exports month summaries to a Google spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"kosht/internal/core"
	"kosht/internal/log"
)

// Exporter writes one sheet per exported month: the period totals followed by
// the category distribution.
type Exporter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetBase     string
	logger        *log.Logger
}

// New creates an Exporter backed by a service-account Sheets client.
// Credentials come from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE,
// or GOOGLE_APPLICATION_CREDENTIALS.
func New(ctx context.Context, spreadsheetID, sheetBase string, logger *log.Logger) (*Exporter, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if sheetBase == "" {
		sheetBase = "Dashboard"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Exporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetBase:     sheetBase,
		logger:        logger.WithComponent(log.ComponentExport),
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
}

// ExportMonth replaces the month's sheet contents with the dashboard summary.
func (e *Exporter) ExportMonth(ctx context.Context, dash core.Dashboard) error {
	if e.svc == nil {
		return errors.New("sheets service not initialized")
	}

	sheet := fmt.Sprintf("%s %s", e.sheetBase, dash.Period.From.Format("2006-01"))
	rng := fmt.Sprintf("%s!A1", sheet)

	if _, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, sheet, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", sheet, err)
	}

	vr := &gsheet.ValueRange{Values: summaryRows(dash)}
	if _, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update sheet %s: %w", sheet, err)
	}

	e.logger.InfoContext(ctx, "month summary exported",
		"sheet", sheet,
		"rows", len(vr.Values))
	return nil
}

// summaryRows lays the dashboard out as spreadsheet rows: totals block, blank
// separator, then one row per category slice.
func summaryRows(dash core.Dashboard) [][]any {
	rows := [][]any{
		{"Month", dash.Period.From.Format("2006-01")},
		{"Total expenses", dash.Totals.TotalExpense.InexactFloat64()},
		{"Total income", dash.Totals.TotalIncome.InexactFloat64()},
		{"Balance", dash.Totals.Balance.InexactFloat64()},
		{},
		{"Category", "Amount"},
	}
	for _, slice := range dash.Categories {
		rows = append(rows, []any{slice.Label, slice.Value.InexactFloat64()})
	}
	return rows
}
