package certification

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCertificationsQuery = `
		SELECT certification_id, name, issuer, issue_date, expiry_date, credential_id, credential_url, image, created_at, updated_at
		FROM certification
		ORDER BY issue_date DESC, certification_id DESC
	`
	getCertificationByIDQuery = `
		SELECT certification_id, name, issuer, issue_date, expiry_date, credential_id, credential_url, image, created_at, updated_at
		FROM certification
		WHERE certification_id = $1
	`
	insertCertificationQuery = `
		INSERT INTO certification (name, issuer, issue_date, expiry_date, credential_id, credential_url, image, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING certification_id
	`
	updateCertificationQuery = `
		UPDATE certification
		SET name = $1,
			issuer = $2,
			issue_date = $3,
			expiry_date = $4,
			credential_id = $5,
			credential_url = $6,
			image = $7,
			updated_at = $8
		WHERE certification_id = $9
	`
	deleteCertificationQuery = `DELETE FROM certification WHERE certification_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Certification, error) {
	rows, err := r.db.Query(listCertificationsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Certification, error) {
	c, err := scanCertification(r.db.QueryRow(getCertificationByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Certification{}, ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) Create(c Certification) (Certification, error) {
	err := r.db.QueryRow(
		insertCertificationQuery,
		c.Name,
		c.Issuer,
		c.IssueDate,
		c.ExpiryDate,
		c.CredentialID,
		c.CredentialURL,
		c.Image,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return Certification{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Certification) (Certification, error) {
	result, err := r.db.Exec(
		updateCertificationQuery,
		c.Name,
		c.Issuer,
		c.IssueDate,
		c.ExpiryDate,
		c.CredentialID,
		c.CredentialURL,
		c.Image,
		c.UpdatedAt,
		id,
	)
	if err != nil {
		return Certification{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Certification{}, err
	}
	if affected == 0 {
		return Certification{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteCertificationQuery, id)
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

func (r *PostgresRepository) Reset(certs []Certification) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM certification`); err != nil {
		return err
	}
	for _, c := range certs {
		if _, err := tx.Exec(insertCertificationQuery,
			c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID, c.CredentialURL, c.Image, c.CreatedAt, c.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertification(scanner rowScanner) (Certification, error) {
	c := Certification{}
	var (
		expiry        sql.NullString
		credentialID  sql.NullString
		credentialURL sql.NullString
		image         sql.NullString
		createdAt     sql.NullString
		updatedAt     sql.NullString
	)
	if err := scanner.Scan(
		&c.ID,
		&c.Name,
		&c.Issuer,
		&c.IssueDate,
		&expiry,
		&credentialID,
		&credentialURL,
		&image,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Certification{}, err
	}
	if expiry.Valid {
		c.ExpiryDate = &expiry.String
	}
	c.CredentialID = credentialID.String
	if credentialURL.Valid {
		c.CredentialURL = &credentialURL.String
	}
	if image.Valid {
		c.Image = &image.String
	}
	c.CreatedAt = createdAt.String
	c.UpdatedAt = updatedAt.String
	return c, nil
}
