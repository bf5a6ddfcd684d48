package project

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProjectsQuery = `
		SELECT project_id, title, slug, description, tech_stack, github_url, live_url, image, project_year, featured, created_at, updated_at
		FROM project
		ORDER BY featured DESC, project_year DESC, project_id DESC
	`
	getProjectByIDQuery = `
		SELECT project_id, title, slug, description, tech_stack, github_url, live_url, image, project_year, featured, created_at, updated_at
		FROM project
		WHERE project_id = $1
	`
	getProjectBySlugQuery = `
		SELECT project_id, title, slug, description, tech_stack, github_url, live_url, image, project_year, featured, created_at, updated_at
		FROM project
		WHERE slug = $1
	`
	insertProjectQuery = `
		INSERT INTO project (title, slug, description, tech_stack, github_url, live_url, image, project_year, featured, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING project_id
	`
	updateProjectQuery = `
		UPDATE project
		SET title = $1,
			slug = $2,
			description = $3,
			tech_stack = $4,
			github_url = $5,
			live_url = $6,
			image = $7,
			project_year = $8,
			featured = $9,
			updated_at = $10
		WHERE project_id = $11
	`
	deleteProjectQuery = `DELETE FROM project WHERE project_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Project, error) {
	rows, err := r.db.Query(listProjectsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Project, error) {
	p, err := scanProject(r.db.QueryRow(getProjectByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Project, error) {
	p, err := scanProject(r.db.QueryRow(getProjectBySlugQuery, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Project) (Project, error) {
	err := r.db.QueryRow(
		insertProjectQuery,
		p.Title,
		p.Slug,
		p.Description,
		pq.Array(p.TechStack),
		p.GithubURL,
		p.LiveURL,
		p.Image,
		p.Year,
		p.Featured,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Project) (Project, error) {
	result, err := r.db.Exec(
		updateProjectQuery,
		p.Title,
		p.Slug,
		p.Description,
		pq.Array(p.TechStack),
		p.GithubURL,
		p.LiveURL,
		p.Image,
		p.Year,
		p.Featured,
		p.UpdatedAt,
		id,
	)
	if err != nil {
		return Project{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Project{}, err
	}
	if affected == 0 {
		return Project{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProjectQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Reset(items []Project) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM project`); err != nil {
		return err
	}
	for _, p := range items {
		if _, err := tx.Exec(insertProjectQuery, p.Title, p.Slug, p.Description, pq.Array(p.TechStack), p.GithubURL, p.LiveURL, p.Image, p.Year, p.Featured, p.CreatedAt, p.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(scanner rowScanner) (Project, error) {
	p := Project{}
	var (
		title       sql.NullString
		slug        sql.NullString
		description sql.NullString
		githubUrl   sql.NullString
		liveUrl     sql.NullString
		image       sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)
	if err := scanner.Scan(
		&p.ID,
		&title,
		&slug,
		&description,
		pq.Array(&p.TechStack),
		&githubUrl,
		&liveUrl,
		&image,
		&p.Year,
		&p.Featured,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Project{}, err
	}
	p.Title = title.String
	p.Slug = slug.String
	p.Description = description.String
	if githubUrl.Valid {
		p.GithubURL = &githubUrl.String
	}
	if liveUrl.Valid {
		p.LiveURL = &liveUrl.String
	}
	if image.Valid {
		p.Image = &image.String
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return p, nil
}
