package questionnaires

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"flashcard-rest/src/models"
)

// SQLiteRepository stores questionnaires in the questionnaires table. The schema is
// created by database.OpenSQLite.
type SQLiteRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLiteRepository(db *sql.DB, timeout time.Duration) *SQLiteRepository {
	return &SQLiteRepository{db: db, timeout: timeout}
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (models.Questionnaire, bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var q models.Questionnaire
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description FROM questionnaires WHERE id = ?`, id,
	).Scan(&q.ID, &q.Title, &q.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Questionnaire{}, false, nil
	}
	if err != nil {
		return models.Questionnaire{}, false, fmt.Errorf("find questionnaire %s: %w", id, err)
	}
	return q, true, nil
}

// orderClause only ever interpolates whitelisted columns and directions.
func orderClause(sort models.SortParams) string {
	dir := "ASC"
	if sort.IsDesc() {
		dir = "DESC"
	}
	if sort.SortBy == models.SortByTitle {
		return fmt.Sprintf("title %s, id %s", dir, dir)
	}
	return "id " + dir
}

func (r *SQLiteRepository) FindAll(ctx context.Context, sort models.SortParams) ([]models.Questionnaire, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description FROM questionnaires ORDER BY `+orderClause(sort))
	if err != nil {
		return nil, fmt.Errorf("find questionnaires: %w", err)
	}
	defer rows.Close()

	list := []models.Questionnaire{}
	for rows.Next() {
		var q models.Questionnaire
		if err := rows.Scan(&q.ID, &q.Title, &q.Description); err != nil {
			return nil, fmt.Errorf("scan questionnaire: %w", err)
		}
		list = append(list, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questionnaires: %w", err)
	}
	return list, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, q models.Questionnaire) (models.Questionnaire, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO questionnaires (id, title, description)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description
	`, q.ID, q.Title, q.Description)
	if err != nil {
		return models.Questionnaire{}, fmt.Errorf("save questionnaire %s: %w", q.ID, err)
	}
	return q, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM questionnaires WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete questionnaire %s: %w", id, err)
	}
	return nil
}
