package repository

//go:generate mockgen -source=store.go -destination=store_mock.go -package=repository

import (
	"context"

	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
)

// RecordResult is the outcome of recording one page.
type RecordResult struct {
	IndividualID int64
	Inserted     bool
}

// StatementRecorder is what the ingestion pipeline needs from the store.
type StatementRecorder interface {
	// RecordStatement creates the individual if absent and inserts the
	// statement unless (individual, date) already exists, in one transaction.
	RecordStatement(ctx context.Context, in entity.NewPayStatement) (RecordResult, error)
}

type IndividualRepository interface {
	UpsertIndividual(ctx context.Context, name string) (int64, error)
	GetIndividualByName(ctx context.Context, name string) (*entity.Individual, error)
	UpdateContact(ctx context.Context, name string, u entity.ContactUpdate) (*entity.Individual, error)
	ListIndividuals(ctx context.Context) ([]*entity.IndividualSummary, error)
}

type PayStatementRepository interface {
	StatementRecorder
	ListStatements(ctx context.Context, individualID *int64) ([]*entity.PayStatement, error)
	GetStatement(ctx context.Context, id int64) (*entity.PayStatement, error)
	DeleteStatement(ctx context.Context, id int64) (*entity.PayStatement, error)
	CountStatements(ctx context.Context) (int64, error)
}
