package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/domain/repository"
)

var expenseColumns = map[string]string{
	entity.ExpenseColumnDescription: "description",
	entity.ExpenseColumnPrice:       "price_cents",
	entity.ExpenseColumnDate:        "date",
}

const expenseSelect = `
	SELECT e.id, e.user_id, e.description, e.price_cents, e.date, e.created_at, e.updated_at,
	       u.id, u.name, u.email, u.created_at, u.updated_at
	FROM expenses e
	JOIN users u ON u.id = e.user_id`

type ExpenseRepository struct {
	db DB
}

func NewExpenseRepository(db DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var (
		e     entity.Expense
		u     entity.User
		cents int64
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Description, &cents, &e.Date, &e.CreatedAt, &e.UpdatedAt,
		&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Price = entity.PriceFromCents(cents)
	e.User = &u
	return &e, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(conn(ctx, r.db).QueryRow(ctx, expenseSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find expense by id: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) FindOwnedByIDs(ctx context.Context, ownerID string, ids []string) ([]entity.Expense, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := conn(ctx, r.db).Query(ctx, expenseSelect+` WHERE e.user_id = $1 AND e.id = ANY($2)`, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("find expenses by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]entity.Expense, len(ids))
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		byID[e.ID] = *e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	out := make([]entity.Expense, 0, len(byID))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	e.Price = entity.RoundPrice(e.Price)
	cents, err := entity.PriceToCents(e.Price)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	row := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO expenses (user_id, description, price_cents, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.Description, cents, e.Date)

	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	if len(changes) == 0 {
		return true, nil
	}
	values := make(map[string]any, len(changes))
	for k, v := range changes {
		if d, ok := v.(decimal.Decimal); ok && k == entity.ExpenseColumnPrice {
			cents, err := entity.PriceToCents(d)
			if err != nil {
				return false, fmt.Errorf("update expense: %w", err)
			}
			v = cents
		}
		values[k] = v
	}
	set, args, err := buildSet(values, func(k string) (string, bool) {
		col, ok := expenseColumns[k]
		return col, ok
	})
	if err != nil {
		return false, err
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE expenses SET %s, updated_at = now() WHERE id = $%d`, set, len(args))

	tag, err := conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update expense: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
