package statements

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/storage"
)

func setup(t *testing.T) (*Service, *repository.MockPayStatementRepository, *storage.MemoryStore) {
	t.Helper()
	repo := repository.NewMockPayStatementRepository(gomock.NewController(t))
	docs := storage.NewMemoryStore()
	return NewService(repo, docs, slog.New(slog.NewTextHandler(io.Discard, nil))), repo, docs
}

func stmt(id int64, filename string) *entity.PayStatement {
	return &entity.PayStatement{ID: id, IndividualID: 1, IndividualName: "Jane Doe", Filename: filename}
}

func TestDocument(t *testing.T) {
	ctx := context.Background()
	svc, repo, docs := setup(t)
	require.NoError(t, docs.Write(ctx, "Jane Doe 2024-03-05.pdf", []byte("%PDF")))

	repo.EXPECT().GetStatement(gomock.Any(), int64(1)).Return(stmt(1, "Jane Doe 2024-03-05.pdf"), nil)
	ps, data, err := svc.Document(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ps.ID)
	assert.Equal(t, []byte("%PDF"), data)

	repo.EXPECT().GetStatement(gomock.Any(), int64(2)).Return(stmt(2, "gone.pdf"), nil)
	_, _, err = svc.Document(ctx, 2)
	assert.True(t, common.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, docs := setup(t)
	require.NoError(t, docs.Write(ctx, "a.pdf", []byte("x")))

	repo.EXPECT().DeleteStatement(gomock.Any(), int64(1)).Return(stmt(1, "a.pdf"), nil)
	_, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, docs.Names())

	repo.EXPECT().DeleteStatement(gomock.Any(), int64(2)).Return(stmt(2, "missing.pdf"), nil)
	ps, err := svc.Delete(ctx, 2)
	require.NoError(t, err, "missing document is tolerated")
	assert.Equal(t, "missing.pdf", ps.Filename)

	repo.EXPECT().DeleteStatement(gomock.Any(), int64(3)).Return(nil, common.NotFoundError("pay statement 3 not found"))
	_, err = svc.Delete(ctx, 3)
	assert.True(t, common.IsNotFound(err))
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	svc, repo, docs := setup(t)
	require.NoError(t, docs.Write(ctx, "present.pdf", []byte("x")))

	repo.EXPECT().ListStatements(gomock.Any(), nil).Return([]*entity.PayStatement{
		stmt(1, "present.pdf"),
		stmt(2, "absent.pdf"),
	}, nil)

	issues, err := svc.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, []IntegrityIssue{{StatementID: 2, Filename: "absent.pdf", Kind: IssueMissingDocument}}, issues)
}

func TestVerify_StoreError(t *testing.T) {
	svc, repo, _ := setup(t)
	dbErr := common.DatabaseError("list statements", errors.New("down"))
	repo.EXPECT().ListStatements(gomock.Any(), nil).Return(nil, dbErr)

	_, err := svc.Verify(context.Background())
	assert.ErrorIs(t, err, common.ErrDatabase)
}
