package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
)

type fakeLister struct {
	list []*entity.PayStatement
	err  error
	got  *int64
}

func (f *fakeLister) ListStatements(_ context.Context, individualID *int64) ([]*entity.PayStatement, error) {
	f.got = individualID
	return f.list, f.err
}

func sample() *fakeLister {
	return &fakeLister{list: []*entity.PayStatement{
		{
			ID: 2, IndividualName: "Jane Doe", Date: "2024-03-19", Filename: "Jane Doe 2024-03-19.pdf",
			ExtractionDate: "2024-04-01", Company: "Acme Corp",
			Amount: decimal.NewNullDecimal(decimal.RequireFromString("1234.5")),
		},
		{
			ID: 1, IndividualName: "Unknown", Date: "Unknown_Date", Filename: "Unknown Unknown_Date.pdf",
			ExtractionDate: "2024-04-01", Company: "Unknown Company",
		},
	}}
}

func newTestService(l StatementLister) *Service {
	return NewService(l, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStatementsCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := newTestService(sample()).StatementsCSV(context.Background(), &buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want := "id,individual,pay_date,net_pay,net_pay_display,company,filename,extraction_date\n" +
		"2,Jane Doe,2024-03-19,1234.50,\"$1,234.50\",Acme Corp,Jane Doe 2024-03-19.pdf,2024-04-01\n" +
		"1,Unknown,Unknown_Date,,,Unknown Company,Unknown Unknown_Date.pdf,2024-04-01\n"
	assert.Equal(t, want, buf.String())
}

func TestStatementsXLSX(t *testing.T) {
	lister := sample()
	id := int64(7)
	data, err := newTestService(lister).StatementsXLSX(context.Background(), &id)
	require.NoError(t, err)
	assert.Equal(t, &id, lister.got)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Statements")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Individual", "Pay Date", "Net Pay", "Company", "Filename", "Extracted On"}, rows[0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "Unknown_Date", rows[2][1])

	raw, err := f.GetCellValue("Statements", "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.5", raw)
	empty, err := f.GetCellValue("Statements", "C3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestExport_ListError(t *testing.T) {
	svc := newTestService(&fakeLister{err: errors.New("db down")})
	_, err := svc.StatementsXLSX(context.Background(), nil)
	assert.ErrorContains(t, err, "db down")
	_, err = svc.StatementsCSV(context.Background(), io.Discard, nil)
	assert.ErrorContains(t, err, "db down")
}
