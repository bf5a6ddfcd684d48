package experience

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listExperiencesQuery = `
		SELECT experience_id, company, position, location, employment_type, start_month, end_month, is_current, description, logo, created_at, updated_at
		FROM experience
		ORDER BY start_month DESC, experience_id DESC
	`
	getExperienceByIDQuery = `
		SELECT experience_id, company, position, location, employment_type, start_month, end_month, is_current, description, logo, created_at, updated_at
		FROM experience
		WHERE experience_id = $1
	`
	insertExperienceQuery = `
		INSERT INTO experience (company, position, location, employment_type, start_month, end_month, is_current, description, logo, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING experience_id
	`
	updateExperienceQuery = `
		UPDATE experience
		SET company = $1,
			position = $2,
			location = $3,
			employment_type = $4,
			start_month = $5,
			end_month = $6,
			is_current = $7,
			description = $8,
			logo = $9,
			updated_at = $10
		WHERE experience_id = $11
	`
	deleteExperienceQuery = `DELETE FROM experience WHERE experience_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Experience, error) {
	rows, err := r.db.Query(listExperiencesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Experience, error) {
	e, err := scanExperience(r.db.QueryRow(getExperienceByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Experience{}, ErrNotFound
	}
	return e, err
}

func (r *PostgresRepository) Create(e Experience) (Experience, error) {
	err := r.db.QueryRow(
		insertExperienceQuery,
		e.Company,
		e.Position,
		e.Location,
		e.EmploymentType,
		e.StartMonth,
		e.EndMonth,
		e.Current,
		e.Description,
		e.Logo,
		e.CreatedAt,
		e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (r *PostgresRepository) Update(id int, e Experience) (Experience, error) {
	result, err := r.db.Exec(
		updateExperienceQuery,
		e.Company,
		e.Position,
		e.Location,
		e.EmploymentType,
		e.StartMonth,
		e.EndMonth,
		e.Current,
		e.Description,
		e.Logo,
		e.UpdatedAt,
		id,
	)
	if err != nil {
		return Experience{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Experience{}, err
	}
	if affected == 0 {
		return Experience{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteExperienceQuery, id)
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

func (r *PostgresRepository) Reset(items []Experience) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM experience`); err != nil {
		return err
	}
	for _, e := range items {
		if _, err := tx.Exec(insertExperienceQuery, e.Company, e.Position, e.Location, e.EmploymentType, e.StartMonth, e.EndMonth, e.Current, e.Description, e.Logo, e.CreatedAt, e.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(scanner rowScanner) (Experience, error) {
	e := Experience{}
	var (
		company        sql.NullString
		position       sql.NullString
		location       sql.NullString
		employmentType sql.NullString
		startMonth     sql.NullString
		endMonth       sql.NullString
		description    sql.NullString
		logo           sql.NullString
		createdAt      sql.NullString
		updatedAt      sql.NullString
	)
	if err := scanner.Scan(
		&e.ID,
		&company,
		&position,
		&location,
		&employmentType,
		&startMonth,
		&endMonth,
		&e.Current,
		&description,
		&logo,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Experience{}, err
	}
	e.Company = company.String
	e.Position = position.String
	e.Location = location.String
	e.EmploymentType = employmentType.String
	e.StartMonth = startMonth.String
	if endMonth.Valid {
		e.EndMonth = &endMonth.String
	}
	e.Description = description.String
	if logo.Valid {
		e.Logo = &logo.String
	}
	e.CreatedAt = createdAt.String
	e.UpdatedAt = updatedAt.String
	return e, nil
}
