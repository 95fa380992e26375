package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbaranski/scrumline/internal/db"
	"github.com/mbaranski/scrumline/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, project_id, parent_id, title, description, type, status,
		assignee_id, estimate, actual_hours, created_at, updated_at, completed_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo. Passing a *sql.Tx
// yields a transaction-scoped repository.
func NewSQLiteWorkItemRepo(conn db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: conn}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (id, project_id, parent_id, title, description, type, status,
		assignee_id, estimate, actual_hours, created_at, updated_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.ProjectID,
		nullableStringToValue(w.ParentID),
		w.Title,
		w.Description,
		string(w.Type),
		string(w.Status),
		w.AssigneeID,
		nullableFloatToValue(w.Estimate),
		nullableFloatToValue(w.ActualHours),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(w.CompletedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanWorkItem(row)
}

func (r *SQLiteWorkItemRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE parent_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child work items: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) ListRoots(ctx context.Context, projectID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		WHERE project_id = ? AND parent_id IS NULL ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing root work items: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing work items by project: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET project_id = ?, parent_id = ?, title = ?, description = ?,
		type = ?, status = ?, assignee_id = ?, estimate = ?, actual_hours = ?,
		updated_at = ?, completed_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		w.ProjectID,
		nullableStringToValue(w.ParentID),
		w.Title,
		w.Description,
		string(w.Type),
		string(w.Status),
		w.AssigneeID,
		nullableFloatToValue(w.Estimate),
		nullableFloatToValue(w.ActualHours),
		w.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(w.CompletedAt, time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) UpdateAggregates(ctx context.Context, id string, estimate, actualHours float64) error {
	query := `UPDATE work_items SET estimate = ?, actual_hours = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		estimate,
		actualHours,
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating work item aggregates: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking aggregate update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work item %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM work_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return nil
}

// scanWorkItem scans a single work item from a *sql.Row.
func (r *SQLiteWorkItemRepo) scanWorkItem(row *sql.Row) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var typeStr, statusStr string
	var parentIDStr, completedAtStr sql.NullString
	var estimate, actualHours sql.NullFloat64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&w.ID, &w.ProjectID, &parentIDStr, &w.Title, &w.Description, &typeStr, &statusStr,
		&w.AssigneeID, &estimate, &actualHours, &createdAtStr, &updatedAtStr, &completedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}

	return populateWorkItem(&w, typeStr, statusStr, parentIDStr, completedAtStr,
		estimate, actualHours, createdAtStr, updatedAtStr)
}

// scanWorkItems scans multiple work items from *sql.Rows.
func (r *SQLiteWorkItemRepo) scanWorkItems(rows *sql.Rows) ([]*domain.WorkItem, error) {
	var items []*domain.WorkItem
	for rows.Next() {
		var w domain.WorkItem
		var typeStr, statusStr string
		var parentIDStr, completedAtStr sql.NullString
		var estimate, actualHours sql.NullFloat64
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&w.ID, &w.ProjectID, &parentIDStr, &w.Title, &w.Description, &typeStr, &statusStr,
			&w.AssigneeID, &estimate, &actualHours, &createdAtStr, &updatedAtStr, &completedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}

		item, err := populateWorkItem(&w, typeStr, statusStr, parentIDStr, completedAtStr,
			estimate, actualHours, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

// populateWorkItem fills in parsed fields on a WorkItem after scanning raw values.
func populateWorkItem(
	w *domain.WorkItem,
	typeStr, statusStr string,
	parentIDStr, completedAtStr sql.NullString,
	estimate, actualHours sql.NullFloat64,
	createdAtStr, updatedAtStr string,
) (*domain.WorkItem, error) {
	w.Type = domain.ItemType(typeStr)
	w.Status = domain.ItemStatus(statusStr)
	w.ParentID = stringFromNull(parentIDStr)
	w.Estimate = floatFromNull(estimate)
	w.ActualHours = floatFromNull(actualHours)
	w.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	w.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return w, nil
}
