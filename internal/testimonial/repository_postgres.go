package testimonial

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listTestimonialsQuery = `
		SELECT testimonial_id, name, role, company, quote, rating, avatar, created_at, updated_at
		FROM testimonial
		ORDER BY created_at DESC, testimonial_id DESC
	`
	getTestimonialByIDQuery = `
		SELECT testimonial_id, name, role, company, quote, rating, avatar, created_at, updated_at
		FROM testimonial
		WHERE testimonial_id = $1
	`
	insertTestimonialQuery = `
		INSERT INTO testimonial (name, role, company, quote, rating, avatar, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING testimonial_id
	`
	updateTestimonialQuery = `
		UPDATE testimonial
		SET name = $1,
			role = $2,
			company = $3,
			quote = $4,
			rating = $5,
			avatar = $6,
			updated_at = $7
		WHERE testimonial_id = $8
	`
	deleteTestimonialQuery = `DELETE FROM testimonial WHERE testimonial_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Testimonial, error) {
	rows, err := r.db.Query(listTestimonialsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Testimonial, error) {
	t, err := scanTestimonial(r.db.QueryRow(getTestimonialByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Testimonial{}, ErrNotFound
	}
	return t, err
}

func (r *PostgresRepository) Create(t Testimonial) (Testimonial, error) {
	err := r.db.QueryRow(
		insertTestimonialQuery,
		t.Name,
		t.Role,
		t.Company,
		t.Quote,
		t.Rating,
		t.Avatar,
		t.CreatedAt,
		t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return Testimonial{}, err
	}
	return t, nil
}

func (r *PostgresRepository) Update(id int, t Testimonial) (Testimonial, error) {
	result, err := r.db.Exec(
		updateTestimonialQuery,
		t.Name,
		t.Role,
		t.Company,
		t.Quote,
		t.Rating,
		t.Avatar,
		t.UpdatedAt,
		id,
	)
	if err != nil {
		return Testimonial{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Testimonial{}, err
	}
	if affected == 0 {
		return Testimonial{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteTestimonialQuery, id)
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

func (r *PostgresRepository) Reset(items []Testimonial) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM testimonial`); err != nil {
		return err
	}
	for _, t := range items {
		if _, err := tx.Exec(insertTestimonialQuery, t.Name, t.Role, t.Company, t.Quote, t.Rating, t.Avatar, t.CreatedAt, t.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTestimonial(scanner rowScanner) (Testimonial, error) {
	t := Testimonial{}
	var (
		name      sql.NullString
		role      sql.NullString
		company   sql.NullString
		quote     sql.NullString
		avatar    sql.NullString
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := scanner.Scan(
		&t.ID,
		&name,
		&role,
		&company,
		&quote,
		&t.Rating,
		&avatar,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Testimonial{}, err
	}
	t.Name = name.String
	t.Role = role.String
	t.Company = company.String
	t.Quote = quote.String
	if avatar.Valid {
		t.Avatar = &avatar.String
	}
	t.CreatedAt = createdAt.String
	t.UpdatedAt = updatedAt.String
	return t, nil
}
