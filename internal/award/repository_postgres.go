package award

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listAwardsQuery = `
		SELECT award_id, name, issuer, award_date, description, url, image, created_at, updated_at
		FROM award
		ORDER BY award_date DESC, award_id DESC
	`
	getAwardByIDQuery = `
		SELECT award_id, name, issuer, award_date, description, url, image, created_at, updated_at
		FROM award
		WHERE award_id = $1
	`
	insertAwardQuery = `
		INSERT INTO award (name, issuer, award_date, description, url, image, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING award_id
	`
	updateAwardQuery = `
		UPDATE award
		SET name = $1,
			issuer = $2,
			award_date = $3,
			description = $4,
			url = $5,
			image = $6,
			updated_at = $7
		WHERE award_id = $8
	`
	deleteAwardQuery = `DELETE FROM award WHERE award_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Award, error) {
	rows, err := r.db.Query(listAwardsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Award, 0)
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Award, error) {
	a, err := scanAward(r.db.QueryRow(getAwardByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Award{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) Create(a Award) (Award, error) {
	err := r.db.QueryRow(
		insertAwardQuery,
		a.Name,
		a.Issuer,
		a.Date,
		a.Description,
		a.URL,
		a.Image,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return Award{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Update(id int, a Award) (Award, error) {
	result, err := r.db.Exec(
		updateAwardQuery,
		a.Name,
		a.Issuer,
		a.Date,
		a.Description,
		a.URL,
		a.Image,
		a.UpdatedAt,
		id,
	)
	if err != nil {
		return Award{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Award{}, err
	}
	if affected == 0 {
		return Award{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteAwardQuery, id)
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

// Reset deletes all awards and inserts the provided list in a single transaction.
func (r *PostgresRepository) Reset(awards []Award) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM award`); err != nil {
		return err
	}
	for _, a := range awards {
		if _, err := tx.Exec(
			`INSERT INTO award (name, issuer, award_date, description, url, image, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			a.Name, a.Issuer, a.Date, a.Description, a.URL, a.Image, a.CreatedAt, a.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAward(scanner rowScanner) (Award, error) {
	a := Award{}
	var (
		description sql.NullString
		url         sql.NullString
		image       sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)
	if err := scanner.Scan(
		&a.ID,
		&a.Name,
		&a.Issuer,
		&a.Date,
		&description,
		&url,
		&image,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Award{}, err
	}
	a.Description = description.String
	if url.Valid {
		a.URL = &url.String
	}
	if image.Valid {
		a.Image = &image.String
	}
	a.CreatedAt = createdAt.String
	a.UpdatedAt = updatedAt.String
	return a, nil
}
