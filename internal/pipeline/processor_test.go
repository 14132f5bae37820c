package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/extract"
	"github.com/joseph-ayodele/paystubs-tracker/internal/pdfsplit"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/storage"
)

const pageText = "PAYROLL ADVICE 4300\nJane Doe\nCheque Date: 05/03/2024\nNet Pay: $1,234.56\nCompany: Acme Corp\n"

type failingStore struct {
	*storage.MemoryStore
	err error
}

func (s *failingStore) Write(context.Context, string, []byte) error { return s.err }

func newProcessor(t *testing.T, docs storage.Store) (*Processor, *repository.MockStatementRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rec := repository.NewMockStatementRecorder(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(extract.NewExtractor(constants.DefaultDelimiter, logger), docs, rec, logger), rec
}

func TestProcessPage_Inserted(t *testing.T) {
	ctx := context.Background()
	docs := storage.NewMemoryStore()
	p, rec := newProcessor(t, docs)

	rec.EXPECT().RecordStatement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in entity.NewPayStatement) (repository.RecordResult, error) {
			assert.Equal(t, "Jane Doe", in.IndividualName)
			assert.Equal(t, "2024-03-05", in.Date)
			assert.Equal(t, "Jane Doe 2024-03-05.pdf", in.Filename)
			assert.Equal(t, "2024-04-01", in.ExtractionDate)
			assert.Equal(t, "1234.56", in.Amount.Decimal.StringFixed(2))
			assert.Equal(t, "Acme Corp", in.Company)
			return repository.RecordResult{IndividualID: 1, Inserted: true}, nil
		})

	res, err := p.ProcessPage(ctx, pdfsplit.Page{Number: 1, Data: []byte("%PDF"), Text: pageText}, "2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, constants.PageInserted, res.Outcome)
	assert.Equal(t, "Jane Doe 2024-03-05.pdf", res.Filename)
	assert.NoError(t, res.Err)

	data, err := docs.Read(ctx, "Jane Doe 2024-03-05.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestProcessPage_DuplicateStillOverwritesFile(t *testing.T) {
	ctx := context.Background()
	docs := storage.NewMemoryStore()
	require.NoError(t, docs.Write(ctx, "Jane Doe 2024-03-05.pdf", []byte("old")))
	p, rec := newProcessor(t, docs)

	rec.EXPECT().RecordStatement(gomock.Any(), gomock.Any()).
		Return(repository.RecordResult{IndividualID: 1}, nil)

	res, err := p.ProcessPage(ctx, pdfsplit.Page{Number: 2, Data: []byte("new"), Text: pageText}, "2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, constants.PageSkipped, res.Outcome)

	data, err := docs.Read(ctx, "Jane Doe 2024-03-05.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestProcessPage_SplitFailedSkipsEverything(t *testing.T) {
	p, _ := newProcessor(t, storage.NewMemoryStore())

	res, err := p.ProcessPage(context.Background(), pdfsplit.Page{Number: 3, Err: errors.New("bad page")}, "2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, constants.PageSplitFailed, res.Outcome)
	assert.True(t, res.Outcome.Failed())
	assert.Empty(t, res.Filename)
}

func TestProcessPage_WriteFailedDoesNotRecord(t *testing.T) {
	docs := &failingStore{MemoryStore: storage.NewMemoryStore(), err: errors.New("disk full")}
	p, _ := newProcessor(t, docs)

	res, err := p.ProcessPage(context.Background(), pdfsplit.Page{Number: 1, Data: []byte("x"), Text: pageText}, "2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, constants.PageWriteFailed, res.Outcome)
	assert.Equal(t, "Jane Doe 2024-03-05.pdf", res.Filename)
	assert.EqualError(t, res.Err, "disk full")
}

func TestProcessPage_StoreFailureIsRunLevel(t *testing.T) {
	p, rec := newProcessor(t, storage.NewMemoryStore())
	storeErr := common.DatabaseError("record statement", errors.New("connection refused"))
	rec.EXPECT().RecordStatement(gomock.Any(), gomock.Any()).Return(repository.RecordResult{}, storeErr)

	_, err := p.ProcessPage(context.Background(), pdfsplit.Page{Number: 1, Data: []byte("x"), Text: pageText}, "2024-04-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDatabase)
}

func TestProcessPage_NoTextUsesPlaceholders(t *testing.T) {
	p, rec := newProcessor(t, storage.NewMemoryStore())
	rec.EXPECT().RecordStatement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in entity.NewPayStatement) (repository.RecordResult, error) {
			assert.Equal(t, constants.UnknownName, in.IndividualName)
			assert.Equal(t, constants.UnknownDate, in.Date)
			assert.False(t, in.Amount.Valid)
			assert.Equal(t, constants.UnknownCompany, in.Company)
			return repository.RecordResult{IndividualID: 9, Inserted: true}, nil
		})

	res, err := p.ProcessPage(context.Background(), pdfsplit.Page{Number: 1, Data: []byte("x")}, "2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Unknown_Date.pdf", res.Filename)
	assert.Equal(t, constants.PageInserted, res.Outcome)
}
