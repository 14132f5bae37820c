// Package export writes recorded pay statements out as spreadsheets.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/utils"
)

// StatementLister is the slice of the statement repository exports need.
type StatementLister interface {
	ListStatements(ctx context.Context, individualID *int64) ([]*entity.PayStatement, error)
}

// Service produces XLSX and CSV exports of pay statements.
type Service struct {
	statements StatementLister
	currency   string
	logger     *slog.Logger
}

func NewService(statements StatementLister, currency string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return &Service{statements: statements, currency: currency, logger: logger}
}

// Row is one exported statement. The csv tags double as the CSV header.
type Row struct {
	ID             int64  `csv:"id"`
	Individual     string `csv:"individual"`
	PayDate        string `csv:"pay_date"`
	NetPay         string `csv:"net_pay"`
	Display        string `csv:"net_pay_display"`
	Company        string `csv:"company"`
	Filename       string `csv:"filename"`
	ExtractionDate string `csv:"extraction_date"`

	amount decimal.NullDecimal `csv:"-"`
}

func (s *Service) rows(ctx context.Context, individualID *int64) ([]*Row, error) {
	list, err := s.statements.ListStatements(ctx, individualID)
	if err != nil {
		return nil, fmt.Errorf("query statements: %w", err)
	}
	rows := make([]*Row, 0, len(list))
	for _, ps := range list {
		r := &Row{
			ID:             ps.ID,
			Individual:     ps.IndividualName,
			PayDate:        ps.Date,
			Company:        ps.Company,
			Filename:       ps.Filename,
			ExtractionDate: ps.ExtractionDate,
			Display:        utils.FormatAmount(ps.Amount, s.currency),
			amount:         ps.Amount,
		}
		if ps.Amount.Valid {
			r.NetPay = ps.Amount.Decimal.StringFixed(2)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// StatementsCSV writes a header plus one line per statement to w.
func (s *Service) StatementsCSV(ctx context.Context, w io.Writer, individualID *int64) (int, error) {
	rows, err := s.rows(ctx, individualID)
	if err != nil {
		return 0, err
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return 0, fmt.Errorf("csv write: %w", err)
	}
	s.logger.Info("export.csv.ok", "rows", len(rows))
	return len(rows), nil
}

// StatementsXLSX returns a workbook (as bytes) with one sheet of statements.
func (s *Service) StatementsXLSX(ctx context.Context, individualID *int64) ([]byte, error) {
	start := time.Now()
	rows, err := s.rows(ctx, individualID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Statements"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Individual",
		"Pay Date",
		"Net Pay",
		"Company",
		"Filename",
		"Extracted On",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}

	for i, r := range rows {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Individual)
		write(2, r.PayDate)
		if r.amount.Valid {
			write(3, r.amount.Decimal.InexactFloat64())
			cell, _ := excelize.CoordinatesToCellName(3, row)
			_ = f.SetCellStyle(sheet, cell, cell, amountStyle)
		}
		write(4, r.Company)
		write(5, r.Filename)
		write(6, r.ExtractionDate)
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // individual
	_ = f.SetColWidth(sheet, "B", "B", 14) // date
	_ = f.SetColWidth(sheet, "C", "C", 14) // amount
	_ = f.SetColWidth(sheet, "D", "D", 28) // company
	_ = f.SetColWidth(sheet, "E", "E", 40) // filename
	_ = f.SetColWidth(sheet, "F", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
