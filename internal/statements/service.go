// Package statements reads, removes and audits recorded pay statements.
package statements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/storage"
)

// Integrity problems reported by Verify.
const (
	IssueMissingDocument = "MISSING_DOCUMENT"
	IssueUnreadable      = "UNREADABLE"
)

// IntegrityIssue is a recorded statement whose document is not usable.
type IntegrityIssue struct {
	StatementID int64  `json:"statement_id"`
	Filename    string `json:"filename"`
	Kind        string `json:"kind"`
	Detail      string `json:"detail,omitempty"`
}

type Service struct {
	repo   repository.PayStatementRepository
	docs   storage.Store
	logger *slog.Logger
}

func NewService(repo repository.PayStatementRepository, docs storage.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		docs:   docs,
		logger: logger,
	}
}

// List returns statements newest first, optionally for one individual.
func (s *Service) List(ctx context.Context, individualID *int64) ([]*entity.PayStatement, error) {
	return s.repo.ListStatements(ctx, individualID)
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.PayStatement, error) {
	return s.repo.GetStatement(ctx, id)
}

// Document returns the statement and the bytes of its stored page.
func (s *Service) Document(ctx context.Context, id int64) (*entity.PayStatement, []byte, error) {
	ps, err := s.repo.GetStatement(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.docs.Read(ctx, ps.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ps, nil, common.NotFoundErrorf("document %q for statement %d", ps.Filename, id)
		}
		return ps, nil, common.NewAppError(common.CodeStorage, "read document", errors.Join(common.ErrStorage, err))
	}
	return ps, data, nil
}

// Delete removes the row, then its document. A document that is already
// gone is logged and ignored.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.PayStatement, error) {
	ps, err := s.repo.DeleteStatement(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.docs.Delete(ctx, ps.Filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("statement document already missing", "id", id, "filename", ps.Filename)
			return ps, nil
		}
		return ps, common.NewAppError(common.CodeStorage, fmt.Sprintf("delete document %q", ps.Filename), errors.Join(common.ErrStorage, err))
	}
	s.logger.Info("statement deleted", "id", id, "filename", ps.Filename)
	return ps, nil
}

// Verify checks that every recorded statement still has its document.
func (s *Service) Verify(ctx context.Context) ([]IntegrityIssue, error) {
	list, err := s.repo.ListStatements(ctx, nil)
	if err != nil {
		return nil, err
	}

	issues := []IntegrityIssue{}
	for _, ps := range list {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		ok, err := s.docs.Exists(ctx, ps.Filename)
		switch {
		case err != nil:
			issues = append(issues, IntegrityIssue{StatementID: ps.ID, Filename: ps.Filename, Kind: IssueUnreadable, Detail: err.Error()})
		case !ok:
			issues = append(issues, IntegrityIssue{StatementID: ps.ID, Filename: ps.Filename, Kind: IssueMissingDocument})
		}
	}
	s.logger.Info("statements.verify.done", "checked", len(list), "issues", len(issues), "store", s.docs.Location())
	return issues, nil
}
