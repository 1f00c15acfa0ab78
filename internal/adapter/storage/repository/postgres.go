package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/payopt/internal/adapter/storage"
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) SaveAllocation(ctx context.Context, a *domain.Allocation) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		unpaid := a.Unpaid
		if unpaid == nil {
			unpaid = []string{}
		}
		runSt := r.db.QueryBuilder.
			Insert("allocation_runs").
			Columns("run_id", "created_at", "order_count", "unpaid").
			Values(a.RunID, a.CreatedAt, a.OrderCount, unpaid)
		if err := r.exec(ctx, tx, runSt); err != nil {
			return err
		}

		if len(a.Plans) > 0 {
			planSt := r.db.QueryBuilder.
				Insert("allocation_plans").
				Columns("run_id", "seq", "order_id", "method_id", "total_value",
					"points_amount", "cash_amount", "discount", "final_amount", "phase")
			for i, p := range a.Plans {
				planSt = planSt.Values(a.RunID, i, p.OrderID, p.MethodID, p.TotalValue,
					p.PointsAmount, p.CashAmount, p.Discount, p.FinalAmount, string(p.Phase))
			}
			if err := r.exec(ctx, tx, planSt); err != nil {
				return err
			}
		}

		spending := spendingRows(a)
		if len(spending) > 0 {
			spendSt := r.db.QueryBuilder.
				Insert("allocation_spending").
				Columns("run_id", "method_id", "spent", "remaining")
			for _, s := range spending {
				spendSt = spendSt.Values(a.RunID, s.methodID, s.spent, s.remaining)
			}
			if err := r.exec(ctx, tx, spendSt); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflictingData
		}
		return fmt.Errorf("saving allocation %s: %w", a.RunID, err)
	}
	return nil
}

func (r *Repository) exec(ctx context.Context, tx pgx.Tx, st sq.InsertBuilder) error {
	sql, args, err := st.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

type spendingRow struct {
	methodID  string
	spent     *decimal.Decimal
	remaining *decimal.Decimal
}

// spendingRows merges summary and remaining limits into one row per method id.
func spendingRows(a *domain.Allocation) []spendingRow {
	rows := make([]spendingRow, 0, len(a.Remaining))
	index := make(map[string]int, len(a.Remaining))
	row := func(id string) *spendingRow {
		i, ok := index[id]
		if !ok {
			i = len(rows)
			index[id] = i
			rows = append(rows, spendingRow{methodID: id})
		}
		return &rows[i]
	}

	for _, id := range a.Summary.SortedIDs() {
		spent := a.Summary[id]
		row(id).spent = &spent
	}
	for _, id := range domain.Summary(a.Remaining).SortedIDs() {
		remaining := a.Remaining[id]
		row(id).remaining = &remaining
	}
	return rows
}

func (r *Repository) ReadAllocation(ctx context.Context, runID uuid.UUID) (*domain.Allocation, error) {
	runSt := r.db.QueryBuilder.
		Select("run_id", "created_at", "order_count", "unpaid").
		From("allocation_runs").
		Where(sq.Eq{"run_id": runID})

	sql, args, err := runSt.ToSql()
	if err != nil {
		return nil, err
	}

	a := domain.Allocation{
		Summary:   make(domain.Summary),
		Remaining: make(domain.Limits),
	}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.RunID, &a.CreatedAt, &a.OrderCount, &a.Unpaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if a.Plans, err = r.readPlans(ctx, runID); err != nil {
		return nil, err
	}
	if err = r.readSpending(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) readPlans(ctx context.Context, runID uuid.UUID) ([]domain.PaymentPlan, error) {
	statement := r.db.QueryBuilder.
		Select("order_id", "method_id", "total_value", "points_amount",
			"cash_amount", "discount", "final_amount", "phase").
		From("allocation_plans").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]domain.PaymentPlan, 0)
	for rows.Next() {
		var p domain.PaymentPlan
		var phase string
		err := rows.Scan(&p.OrderID, &p.MethodID, &p.TotalValue, &p.PointsAmount,
			&p.CashAmount, &p.Discount, &p.FinalAmount, &phase)
		if err != nil {
			return nil, err
		}
		p.Phase = domain.Phase(phase)
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *Repository) readSpending(ctx context.Context, a *domain.Allocation) error {
	statement := r.db.QueryBuilder.
		Select("method_id", "spent", "remaining").
		From("allocation_spending").
		Where(sq.Eq{"run_id": a.RunID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var spent, remaining *decimal.Decimal
		if err := rows.Scan(&id, &spent, &remaining); err != nil {
			return err
		}
		if spent != nil {
			a.Summary[id] = *spent
		}
		if remaining != nil {
			a.Remaining[id] = *remaining
		}
	}
	return rows.Err()
}
