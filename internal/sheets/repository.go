package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/grosz-dev/grosz/internal/common"
	"github.com/grosz-dev/grosz/internal/model"
	"github.com/grosz-dev/grosz/internal/service"
)

// Repository implements service.LedgerRepository over a single worksheet.
type Repository struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewRepository creates a sheets-backed ledger repository.
func NewRepository(ctx context.Context, config Config, logger *slog.Logger) (*Repository, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Repository{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Load fetches every row of the worksheet and coerces it into the
// canonical schema. Transport failures surface as errors; the command
// layer decides whether to degrade to an empty ledger.
func (r *Repository) Load(ctx context.Context) ([]model.Transaction, error) {
	readRange := fmt.Sprintf("%s!A:E", r.config.WorksheetName)

	resp, err := r.service.Spreadsheets.Values.Get(r.config.SpreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger rows: %w", err)
	}

	txns, err := DecodeRows(resp.Values)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ledger rows: %w", err)
	}

	r.logger.Debug("loaded ledger", "rows", len(txns))
	return txns, nil
}

// SaveAll performs the full clear-and-rewrite of the worksheet. Writes
// go out in batches with retry; a failure mid-write can leave the table
// truncated, and no rollback is attempted.
func (r *Repository) SaveAll(ctx context.Context, ledger []model.Transaction) error {
	values := EncodeRows(ledger)

	clearRange := fmt.Sprintf("%s!A:E", r.config.WorksheetName)
	_, err := r.service.Spreadsheets.Values.Clear(r.config.SpreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  r.config.RetryAttempts,
		InitialDelay: r.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return r.writeValues(ctx, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	r.logger.Info("ledger saved", "rows", len(ledger))
	return nil
}

// Append adds a single fully-formed row after the existing data without
// reading or rewriting anything.
func (r *Repository) Append(ctx context.Context, txn model.Transaction) error {
	valueRange := &sheets.ValueRange{
		Values: [][]any{EncodeRow(txn)},
	}

	appendRange := fmt.Sprintf("%s!A:E", r.config.WorksheetName)
	_, err := r.service.Spreadsheets.Values.Append(r.config.SpreadsheetID, appendRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	r.logger.Debug("row appended", "id", txn.ID)
	return nil
}

// writeValues writes the encoded table in batches to stay under API
// request limits.
func (r *Repository) writeValues(ctx context.Context, values [][]any) error {
	for i := 0; i < len(values); i += r.config.BatchSize {
		end := i + r.config.BatchSize
		if end > len(values) {
			end = len(values)
		}

		valueRange := &sheets.ValueRange{
			Values: values[i:end],
		}

		rangeStr := fmt.Sprintf("%s!A%d", r.config.WorksheetName, i+1)
		_, err := r.service.Spreadsheets.Values.Update(r.config.SpreadsheetID, rangeStr, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		r.logger.Debug("wrote batch", "start_row", i+1, "rows", end-i)
	}

	return nil
}
