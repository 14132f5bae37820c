package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
)

type individualRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewIndividualRepository(db *DB, logger *slog.Logger) IndividualRepository {
	return &individualRepository{
		db:     db,
		logger: logger,
	}
}

func (r *individualRepository) UpsertIndividual(ctx context.Context, name string) (int64, error) {
	id, err := upsertIndividual(ctx, r.db.drv, r.db.dialect, name)
	if err != nil {
		r.logger.Error("failed to upsert individual", "name", name, "error", err)
		return 0, common.DatabaseError("upsert individual", err)
	}
	return id, nil
}

// upsertIndividual creates the individual if no row has this name and
// returns the id either way. Contact fields of an existing row are untouched.
func upsertIndividual(ctx context.Context, ex dialect.ExecQuerier, d, name string) (int64, error) {
	b := entsql.Dialect(d)
	ins := b.Insert(tableIndividuals).
		Columns("name").
		Values(name).
		OnConflict(entsql.ConflictColumns("name"), entsql.DoNothing())
	if _, err := exec(ctx, ex, ins); err != nil {
		return 0, err
	}

	sel := b.Select("id").From(b.Table(tableIndividuals)).Where(entsql.EQ("name", name))
	var id int64
	found := false
	err := query(ctx, ex, sel, func(rows *entsql.Rows) error {
		found = true
		return rows.Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, sql.ErrNoRows
	}
	return id, nil
}

func (r *individualRepository) GetIndividualByName(ctx context.Context, name string) (*entity.Individual, error) {
	ind, err := getIndividual(ctx, r.db.drv, r.db.dialect, name)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, err
		}
		r.logger.Error("failed to get individual", "name", name, "error", err)
		return nil, common.DatabaseError("get individual", err)
	}
	return ind, nil
}

func getIndividual(ctx context.Context, ex dialect.ExecQuerier, d, name string) (*entity.Individual, error) {
	b := entsql.Dialect(d)
	sel := b.Select("id", "name", "address", "phone_number", "email").
		From(b.Table(tableIndividuals)).
		Where(entsql.EQ("name", name))

	var out *entity.Individual
	err := query(ctx, ex, sel, func(rows *entsql.Rows) error {
		ind, err := scanIndividual(rows)
		out = ind
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, common.NotFoundErrorf("individual %q not found", name)
	}
	return out, nil
}

func (r *individualRepository) UpdateContact(ctx context.Context, name string, u entity.ContactUpdate) (*entity.Individual, error) {
	var out *entity.Individual
	err := r.db.WithTx(ctx, func(tx dialect.Tx) error {
		if !u.Empty() {
			upd := entsql.Dialect(r.db.dialect).Update(tableIndividuals).Where(entsql.EQ("name", name))
			if u.Address != nil {
				upd.Set("address", *u.Address)
			}
			if u.PhoneNumber != nil {
				upd.Set("phone_number", *u.PhoneNumber)
			}
			if u.Email != nil {
				upd.Set("email", *u.Email)
			}
			if _, err := exec(ctx, tx, upd); err != nil {
				return err
			}
		}
		ind, err := getIndividual(ctx, tx, r.db.dialect, name)
		out = ind
		return err
	})
	if err != nil {
		if common.IsNotFound(err) {
			return nil, err
		}
		r.logger.Error("failed to update contact", "name", name, "error", err)
		return nil, common.DatabaseError("update contact", err)
	}
	r.logger.Info("individual.contact.updated", "id", out.ID, "name", name)
	return out, nil
}

func (r *individualRepository) ListIndividuals(ctx context.Context) ([]*entity.IndividualSummary, error) {
	b := entsql.Dialect(r.db.dialect)
	i := b.Table(tableIndividuals).As("i")
	ps := b.Table(tablePayStatements).As("ps")
	cols := []string{i.C("id"), i.C("name"), i.C("address"), i.C("phone_number"), i.C("email")}
	sel := b.Select(append(cols, entsql.Count(ps.C("id")), entsql.Sum(ps.C("amount")))...).
		From(i).
		LeftJoin(ps).On(i.C("id"), ps.C("individual_id")).
		GroupBy(cols...).
		OrderBy(i.C("name"))

	var out []*entity.IndividualSummary
	err := query(ctx, r.db.drv, sel, func(rows *entsql.Rows) error {
		var (
			s                     entity.IndividualSummary
			address, phone, email sql.NullString
			total                 decimal.NullDecimal
		)
		if err := rows.Scan(&s.ID, &s.Name, &address, &phone, &email, &s.StatementCount, &total); err != nil {
			return err
		}
		s.Address, s.PhoneNumber, s.Email = nullString(address), nullString(phone), nullString(email)
		if total.Valid {
			s.TotalNetPay = total.Decimal.Round(2)
		}
		out = append(out, &s)
		return nil
	})
	if err != nil {
		r.logger.Error("failed to list individuals", "error", err)
		return nil, common.DatabaseError("list individuals", err)
	}
	return out, nil
}

func scanIndividual(rows *entsql.Rows) (*entity.Individual, error) {
	var (
		ind                   entity.Individual
		address, phone, email sql.NullString
	)
	if err := rows.Scan(&ind.ID, &ind.Name, &address, &phone, &email); err != nil {
		return nil, err
	}
	ind.Address, ind.PhoneNumber, ind.Email = nullString(address), nullString(phone), nullString(email)
	return &ind, nil
}
