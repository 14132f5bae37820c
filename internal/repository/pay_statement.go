package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
)

type payStatementRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewPayStatementRepository(db *DB, logger *slog.Logger) PayStatementRepository {
	return &payStatementRepository{
		db:     db,
		logger: logger,
	}
}

func (r *payStatementRepository) RecordStatement(ctx context.Context, in entity.NewPayStatement) (RecordResult, error) {
	var res RecordResult
	err := r.db.WithTx(ctx, func(tx dialect.Tx) error {
		id, err := upsertIndividual(ctx, tx, r.db.dialect, in.IndividualName)
		if err != nil {
			return err
		}
		res.IndividualID = id
		res.Inserted, err = insertIfAbsent(ctx, tx, r.db.dialect, id, in)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			// A concurrent writer won the race; the pair is present.
			r.logger.Debug("statement.insert.conflict", "name", in.IndividualName, "date", in.Date)
			return RecordResult{IndividualID: res.IndividualID}, nil
		}
		r.logger.Error("failed to record statement", "name", in.IndividualName, "date", in.Date, "error", err)
		return RecordResult{}, common.DatabaseError("record statement", err)
	}
	return res, nil
}

// insertIfAbsent is a single conditional insert; the (individual_id, date)
// unique constraint decides, so there is no check-then-insert window.
func insertIfAbsent(ctx context.Context, ex dialect.ExecQuerier, d string, individualID int64, in entity.NewPayStatement) (bool, error) {
	ins := entsql.Dialect(d).Insert(tablePayStatements).
		Columns("individual_id", "date", "filename", "extraction_date", "amount", "company").
		Values(individualID, in.Date, in.Filename, in.ExtractionDate, in.Amount, in.Company).
		OnConflict(entsql.ConflictColumns("individual_id", "date"), entsql.DoNothing())
	res, err := exec(ctx, ex, ins)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *payStatementRepository) ListStatements(ctx context.Context, individualID *int64) ([]*entity.PayStatement, error) {
	sel := r.statementSelect()
	if individualID != nil {
		sel.Where(entsql.EQ(sel.C("individual_id"), *individualID))
	}
	sel.OrderBy(entsql.Desc(sel.C("date")), entsql.Asc(sel.C("id")))

	var out []*entity.PayStatement
	err := query(ctx, r.db.drv, sel, func(rows *entsql.Rows) error {
		ps, err := scanStatement(rows)
		if err == nil {
			out = append(out, ps)
		}
		return err
	})
	if err != nil {
		r.logger.Error("failed to list statements", "individual_id", individualID, "error", err)
		return nil, common.DatabaseError("list statements", err)
	}
	return out, nil
}

func (r *payStatementRepository) GetStatement(ctx context.Context, id int64) (*entity.PayStatement, error) {
	ps, err := getStatement(ctx, r.db.drv, r.statementSelect(), id)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, err
		}
		r.logger.Error("failed to get statement", "id", id, "error", err)
		return nil, common.DatabaseError("get statement", err)
	}
	return ps, nil
}

// DeleteStatement removes the row and returns it as it was. The individual is kept.
func (r *payStatementRepository) DeleteStatement(ctx context.Context, id int64) (*entity.PayStatement, error) {
	var out *entity.PayStatement
	err := r.db.WithTx(ctx, func(tx dialect.Tx) error {
		ps, err := getStatement(ctx, tx, r.statementSelect(), id)
		if err != nil {
			return err
		}
		del := entsql.Dialect(r.db.dialect).Delete(tablePayStatements).Where(entsql.EQ("id", id))
		if _, err := exec(ctx, tx, del); err != nil {
			return err
		}
		out = ps
		return nil
	})
	if err != nil {
		if common.IsNotFound(err) {
			return nil, err
		}
		r.logger.Error("failed to delete statement", "id", id, "error", err)
		return nil, common.DatabaseError("delete statement", err)
	}
	r.logger.Info("statement.deleted", "id", id, "filename", out.Filename)
	return out, nil
}

func (r *payStatementRepository) CountStatements(ctx context.Context) (int64, error) {
	b := entsql.Dialect(r.db.dialect)
	sel := b.Select().Count().From(b.Table(tablePayStatements))
	var n int64
	err := query(ctx, r.db.drv, sel, func(rows *entsql.Rows) error {
		return rows.Scan(&n)
	})
	if err != nil {
		return 0, common.DatabaseError("count statements", err)
	}
	return n, nil
}

func (r *payStatementRepository) statementSelect() *entsql.Selector {
	b := entsql.Dialect(r.db.dialect)
	ps := b.Table(tablePayStatements)
	i := b.Table(tableIndividuals)
	return b.Select(
		ps.C("id"), ps.C("individual_id"), i.C("name"), ps.C("date"),
		ps.C("filename"), ps.C("extraction_date"), ps.C("amount"), ps.C("company"),
	).From(ps).Join(i).On(ps.C("individual_id"), i.C("id"))
}

func getStatement(ctx context.Context, ex dialect.ExecQuerier, sel *entsql.Selector, id int64) (*entity.PayStatement, error) {
	sel.Where(entsql.EQ(sel.C("id"), id))
	var out *entity.PayStatement
	err := query(ctx, ex, sel, func(rows *entsql.Rows) error {
		ps, err := scanStatement(rows)
		out = ps
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, common.NotFoundErrorf("pay statement %d not found", id)
	}
	return out, nil
}

func scanStatement(rows *entsql.Rows) (*entity.PayStatement, error) {
	var (
		ps      entity.PayStatement
		company sql.NullString
	)
	if err := rows.Scan(&ps.ID, &ps.IndividualID, &ps.IndividualName, &ps.Date,
		&ps.Filename, &ps.ExtractionDate, &ps.Amount, &company); err != nil {
		return nil, err
	}
	ps.Company = company.String
	if ps.Amount.Valid {
		ps.Amount.Decimal = ps.Amount.Decimal.Round(2)
	}
	return &ps, nil
}
