package service

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listServicesQuery = `
		SELECT service_id, title, description, icon, ord, created_at, updated_at
		FROM service
		ORDER BY ord ASC, service_id ASC
	`
	getServiceByIDQuery = `
		SELECT service_id, title, description, icon, ord, created_at, updated_at
		FROM service
		WHERE service_id = $1
	`
	insertServiceQuery = `
		INSERT INTO service (title, description, icon, ord, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING service_id
	`
	updateServiceQuery = `
		UPDATE service
		SET title = $1,
			description = $2,
			icon = $3,
			ord = $4,
			updated_at = $5
		WHERE service_id = $6
	`
	deleteServiceQuery = `DELETE FROM service WHERE service_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Service, error) {
	rows, err := r.db.Query(listServicesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Service, error) {
	s, err := scanService(r.db.QueryRow(getServiceByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Service{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) Create(s Service) (Service, error) {
	err := r.db.QueryRow(
		insertServiceQuery,
		s.Title,
		s.Description,
		s.Icon,
		s.Ord,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return Service{}, err
	}
	return s, nil
}

func (r *PostgresRepository) Update(id int, s Service) (Service, error) {
	result, err := r.db.Exec(
		updateServiceQuery,
		s.Title,
		s.Description,
		s.Icon,
		s.Ord,
		s.UpdatedAt,
		id,
	)
	if err != nil {
		return Service{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Service{}, err
	}
	if affected == 0 {
		return Service{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteServiceQuery, id)
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

func (r *PostgresRepository) Reset(items []Service) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM service`); err != nil {
		return err
	}
	for _, s := range items {
		if _, err := tx.Exec(insertServiceQuery, s.Title, s.Description, s.Icon, s.Ord, s.CreatedAt, s.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(scanner rowScanner) (Service, error) {
	s := Service{}
	var (
		title       sql.NullString
		description sql.NullString
		icon        sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)
	if err := scanner.Scan(
		&s.ID,
		&title,
		&description,
		&icon,
		&s.Ord,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Service{}, err
	}
	s.Title = title.String
	s.Description = description.String
	s.Icon = icon.String
	s.CreatedAt = createdAt.String
	s.UpdatedAt = updatedAt.String
	return s, nil
}
