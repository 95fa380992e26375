package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mbaranski/scrumline/internal/db"
	"github.com/mbaranski/scrumline/internal/domain"
)

const projectColumns = `id, key, name, status, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, key, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		strings.ToUpper(p.Key),
		p.Name,
		string(p.Status),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByKey(ctx context.Context, key string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE key = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, strings.ToUpper(key)))
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	if !includeArchived {
		query = `SELECT ` + projectColumns + ` FROM projects WHERE status != 'archived' ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var statusStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&p.ID, &p.Key, &p.Name, &statusStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		if err := populateProject(&p, statusStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET key = ?, name = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		strings.ToUpper(p.Key),
		p.Name,
		string(p.Status),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	err := row.Scan(&p.ID, &p.Key, &p.Name, &statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	if err := populateProject(&p, statusStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func populateProject(p *domain.Project, statusStr, createdAtStr, updatedAtStr string) error {
	p.Status = domain.ProjectStatus(statusStr)
	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
