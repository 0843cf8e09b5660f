package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/domain/repository"
)

// ErrUnknownColumn is returned when a caller addresses a column outside the allow-list.
var ErrUnknownColumn = errors.New("unknown column")

// userColumns maps entity columns to table columns.
var userColumns = map[string]string{
	entity.UserColumnID:        "id",
	entity.UserColumnName:      "name",
	entity.UserColumnEmail:     "email",
	entity.UserColumnPassword:  "password_hash",
	entity.UserColumnCreatedAt: "created_at",
	entity.UserColumnUpdatedAt: "updated_at",
}

const userSelect = `SELECT id, name, email, password_hash, created_at, updated_at FROM users`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	row := conn(ctx, r.db).QueryRow(ctx, userSelect+` WHERE id = $1`, id)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindBy(ctx context.Context, column string, value any, fields []string, all bool) ([]entity.User, error) {
	if !entity.IsUserFillable(column) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	selected, err := selectUserFields(fields)
	if err != nil {
		return nil, err
	}

	cols := make([]string, len(selected))
	for i, f := range selected {
		cols[i] = userColumns[f]
	}
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1 ORDER BY created_at`,
		strings.Join(cols, ", "), userColumns[column])
	if !all {
		query += ` LIMIT 1`
	}

	rows, err := conn(ctx, r.db).Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("find users by %s: %w", column, err)
	}
	defer rows.Close()

	var out []entity.User
	for rows.Next() {
		var u entity.User
		dest := make([]any, len(selected))
		for i, f := range selected {
			dest[i] = userField(&u, f)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func selectUserFields(fields []string) ([]string, error) {
	if len(fields) == 0 {
		return entity.UserColumns, nil
	}
	for _, f := range fields {
		if f == "*" {
			return entity.UserColumns, nil
		}
	}
	for _, f := range fields {
		if _, ok := userColumns[f]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, f)
		}
	}
	return fields, nil
}

func userField(u *entity.User, column string) any {
	switch column {
	case entity.UserColumnID:
		return &u.ID
	case entity.UserColumnName:
		return &u.Name
	case entity.UserColumnEmail:
		return &u.Email
	case entity.UserColumnPassword:
		return &u.Password
	case entity.UserColumnCreatedAt:
		return &u.CreatedAt
	default:
		return &u.UpdatedAt
	}
}

func (r *UserRepository) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	var (
		exists bool
		err    error
	)
	if exceptID == "" {
		err = conn(ctx, r.db).QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	} else {
		err = conn(ctx, r.db).QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, email, exceptID).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Password)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	if len(changes) == 0 {
		return true, nil
	}
	set, args, err := buildSet(changes, func(k string) (string, bool) {
		if !entity.IsUserFillable(k) {
			return "", false
		}
		return userColumns[k], true
	})
	if err != nil {
		return false, err
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = now() WHERE id = $%d`, set, len(args))

	tag, err := conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, repository.ErrDuplicate
		}
		return false, fmt.Errorf("update user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// buildSet renders "col = $n" pairs in key order so statements are stable.
func buildSet(changes map[string]any, column func(string) (string, bool)) (string, []any, error) {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for _, k := range keys {
		col, ok := column(k)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrUnknownColumn, k)
		}
		args = append(args, changes[k])
		parts = append(parts, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	return strings.Join(parts, ", "), args, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
