package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/atinyakov/taskwarden/internal/apperrors"
	"github.com/atinyakov/taskwarden/internal/models"
)

// PostgresTaskRepository implements task persistence against a PostgreSQL database.
// Every query is scoped by the owning user's id: a task id belonging to
// another user behaves exactly like a missing id.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// ListByOwner fetches tasks for the given user, ordered ascending by due
// date, returning at most limit rows starting at offset. If status is
// non-empty the result is restricted to tasks with exactly that status.
func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, userID, status string, limit, offset int) ([]models.Task, error) {
	query := `
		SELECT id, user_id, title, description, due_date::text, status FROM tasks
		 WHERE user_id = $1 ORDER BY due_date LIMIT $2 OFFSET $3
	`
	args := []any{userID, limit, offset}

	if status != "" {
		query = `
		SELECT id, user_id, title, description, due_date::text, status FROM tasks
		 WHERE user_id = $1 AND status = $2 ORDER BY due_date LIMIT $3 OFFSET $4
	`
		args = []any{userID, status, limit, offset}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// CreateTask inserts a new task with a generated id, owned by userID.
func (r *PostgresTaskRepository) CreateTask(ctx context.Context, userID string, task models.Task) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), userID, task.Title, task.Description, task.DueDate, task.Status)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// UpdateTask replaces title, description, due date and status of the task
// matching both id and userID. Returns apperrors.ErrNotFound when no row
// matched, whether the id is absent or owned by someone else.
func (r *PostgresTaskRepository) UpdateTask(ctx context.Context, userID, id string, task models.Task) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE tasks SET title = $1, description = $2, due_date = $3, status = $4
		 WHERE id = $5 AND user_id = $6
	`, task.Title, task.Description, task.DueDate, task.Status, id, userID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTask permanently removes the task matching both id and userID.
// Returns apperrors.ErrNotFound when no row matched.
func (r *PostgresTaskRepository) DeleteTask(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DueSoon fetches the user's tasks whose due date falls within the closed
// interval [today, today+2 days], evaluated against the database clock.
func (r *PostgresTaskRepository) DueSoon(ctx context.Context, userID string) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, title, description, due_date::text, status FROM tasks
		 WHERE user_id = $1
		   AND due_date BETWEEN CURRENT_DATE AND CURRENT_DATE + INTERVAL '2 days'
		 ORDER BY due_date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("due soon: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &t.Status); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tasks, nil
}
