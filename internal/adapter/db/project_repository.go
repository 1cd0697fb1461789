package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

type ProjectRepository struct {
	db *sqlx.DB
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectRow struct {
	ID          int64          `db:"id"`
	Identifier  string         `db:"identifier"`
	Name        string         `db:"name"`
	Responsible sql.NullString `db:"responsible"`
}

func (r *ProjectRepository) Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (identifier, name, responsible) VALUES (?, ?, ?)",
		in.Identifier, in.Name, nullString(in.Responsible),
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Project{}, domain.ErrDuplicateIdentifier
		}
		return domain.Project{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}

	return domain.Project{
		ID:          id,
		Identifier:  in.Identifier,
		Name:        in.Name,
		Responsible: in.Responsible,
	}, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, identifier, name, responsible FROM projects WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return mapProjectRow(row), nil
}

func (r *ProjectRepository) GetByIdentifier(ctx context.Context, identifier string) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, identifier, name, responsible FROM projects WHERE identifier = ?", identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return mapProjectRow(row), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, identifier, name, responsible FROM projects ORDER BY name")
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRow(row))
	}
	return projects, nil
}

func mapProjectRow(row projectRow) domain.Project {
	project := domain.Project{
		ID:         row.ID,
		Identifier: row.Identifier,
		Name:       row.Name,
	}
	if row.Responsible.Valid {
		value := row.Responsible.String
		project.Responsible = &value
	}
	return project
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
