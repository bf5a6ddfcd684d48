package education

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listEducationsQuery = `
		SELECT education_id, institution, degree, field_of_study, start_month, end_month, is_current, grade, description, logo, created_at, updated_at
		FROM education
		ORDER BY start_month DESC, education_id DESC
	`
	getEducationByIDQuery = `
		SELECT education_id, institution, degree, field_of_study, start_month, end_month, is_current, grade, description, logo, created_at, updated_at
		FROM education
		WHERE education_id = $1
	`
	insertEducationQuery = `
		INSERT INTO education (institution, degree, field_of_study, start_month, end_month, is_current, grade, description, logo, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING education_id
	`
	updateEducationQuery = `
		UPDATE education
		SET institution = $1,
			degree = $2,
			field_of_study = $3,
			start_month = $4,
			end_month = $5,
			is_current = $6,
			grade = $7,
			description = $8,
			logo = $9,
			updated_at = $10
		WHERE education_id = $11
	`
	deleteEducationQuery = `DELETE FROM education WHERE education_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Education, error) {
	rows, err := r.db.Query(listEducationsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Education, error) {
	e, err := scanEducation(r.db.QueryRow(getEducationByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Education{}, ErrNotFound
	}
	return e, err
}

func (r *PostgresRepository) Create(e Education) (Education, error) {
	err := r.db.QueryRow(
		insertEducationQuery,
		e.Institution,
		e.Degree,
		e.FieldOfStudy,
		e.StartMonth,
		e.EndMonth,
		e.Current,
		e.Grade,
		e.Description,
		e.Logo,
		e.CreatedAt,
		e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return Education{}, err
	}
	return e, nil
}

func (r *PostgresRepository) Update(id int, e Education) (Education, error) {
	result, err := r.db.Exec(
		updateEducationQuery,
		e.Institution,
		e.Degree,
		e.FieldOfStudy,
		e.StartMonth,
		e.EndMonth,
		e.Current,
		e.Grade,
		e.Description,
		e.Logo,
		e.UpdatedAt,
		id,
	)
	if err != nil {
		return Education{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Education{}, err
	}
	if affected == 0 {
		return Education{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteEducationQuery, id)
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

func (r *PostgresRepository) Reset(items []Education) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM education`); err != nil {
		return err
	}
	for _, e := range items {
		if _, err := tx.Exec(insertEducationQuery, e.Institution, e.Degree, e.FieldOfStudy, e.StartMonth, e.EndMonth, e.Current, e.Grade, e.Description, e.Logo, e.CreatedAt, e.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEducation(scanner rowScanner) (Education, error) {
	e := Education{}
	var (
		institution  sql.NullString
		degree       sql.NullString
		fieldOfStudy sql.NullString
		startMonth   sql.NullString
		endMonth     sql.NullString
		grade        sql.NullString
		description  sql.NullString
		logo         sql.NullString
		createdAt    sql.NullString
		updatedAt    sql.NullString
	)
	if err := scanner.Scan(
		&e.ID,
		&institution,
		&degree,
		&fieldOfStudy,
		&startMonth,
		&endMonth,
		&e.Current,
		&grade,
		&description,
		&logo,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Education{}, err
	}
	e.Institution = institution.String
	e.Degree = degree.String
	e.FieldOfStudy = fieldOfStudy.String
	e.StartMonth = startMonth.String
	if endMonth.Valid {
		e.EndMonth = &endMonth.String
	}
	e.Grade = grade.String
	e.Description = description.String
	if logo.Valid {
		e.Logo = &logo.String
	}
	e.CreatedAt = createdAt.String
	e.UpdatedAt = updatedAt.String
	return e, nil
}
