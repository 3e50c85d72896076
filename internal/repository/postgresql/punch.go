package postgresql

import (
	"context"
	"fmt"

	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepository struct {
	db *database.DB
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_id, punched_at, origin, justification)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newPunch.EmployeeID,
		newPunch.PunchedAt,
		newPunch.Origin,
		newPunch.Justification,
	).Scan(&newPunch.ID, &newPunch.CreatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return newPunch, nil
}

// BulkCreate implements punch.PunchRepository.
func (r *punchRepository) BulkCreate(ctx context.Context, punches []punch.Punch) error {
	if len(punches) == 0 {
		return nil
	}

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO punches (employee_id, punched_at, origin, justification)
			VALUES ($1, $2, $3, $4)
		`
		for _, p := range punches {
			if _, err := tx.Exec(ctx, query, p.EmployeeID, p.PunchedAt, p.Origin, p.Justification); err != nil {
				return fmt.Errorf("failed to insert punch for employee %s: %w", p.EmployeeID, err)
			}
		}
		return nil
	})
}

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter punch.ListFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND punched_at::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND punched_at::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, punched_at, origin, justification, created_at
		FROM punches
		WHERE %s
		ORDER BY punched_at DESC
	`, baseWhere)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListRange implements punch.PunchRepository.
func (r *punchRepository) ListRange(ctx context.Context, filter punch.RangeFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !filter.From.IsZero() {
		baseWhere += fmt.Sprintf(" AND punched_at >= $%d", argIdx)
		args = append(args, filter.From)
		argIdx++
	}

	if !filter.To.IsZero() {
		baseWhere += fmt.Sprintf(" AND punched_at < $%d", argIdx)
		args = append(args, filter.To)
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, punched_at, origin, justification, created_at
		FROM punches
		WHERE %s
		ORDER BY punched_at ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch range: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

func scanPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.PunchedAt, &p.Origin, &p.Justification, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punches: %w", err)
	}
	return punches, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
