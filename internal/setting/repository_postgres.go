package setting

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getSettingQuery = `
		SELECT site_name, tagline, description, email, phone, location, resume_url, logo,
			github_url, linkedin_url, twitter_url, instagram_url, updated_at
		FROM setting
		WHERE setting_id = 1
	`
	upsertSettingQuery = `
		INSERT INTO setting (setting_id, site_name, tagline, description, email, phone, location, resume_url, logo,
			github_url, linkedin_url, twitter_url, instagram_url, updated_at)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (setting_id) DO UPDATE
		SET site_name = EXCLUDED.site_name,
			tagline = EXCLUDED.tagline,
			description = EXCLUDED.description,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			resume_url = EXCLUDED.resume_url,
			logo = EXCLUDED.logo,
			github_url = EXCLUDED.github_url,
			linkedin_url = EXCLUDED.linkedin_url,
			twitter_url = EXCLUDED.twitter_url,
			instagram_url = EXCLUDED.instagram_url,
			updated_at = EXCLUDED.updated_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() (Setting, error) {
	s := Setting{}
	var (
		resumeURL sql.NullString
		logo      sql.NullString
		updatedAt sql.NullString
	)
	err := r.db.QueryRow(getSettingQuery).Scan(
		&s.SiteName,
		&s.Tagline,
		&s.Description,
		&s.Email,
		&s.Phone,
		&s.Location,
		&resumeURL,
		&logo,
		&s.GithubURL,
		&s.LinkedinURL,
		&s.TwitterURL,
		&s.InstagramURL,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Default(), nil
	}
	if err != nil {
		return Setting{}, err
	}
	if resumeURL.Valid {
		s.ResumeURL = &resumeURL.String
	}
	if logo.Valid {
		s.Logo = &logo.String
	}
	s.UpdatedAt = updatedAt.String
	return s, nil
}

func (r *PostgresRepository) Save(s Setting) (Setting, error) {
	_, err := r.db.Exec(
		upsertSettingQuery,
		s.SiteName,
		s.Tagline,
		s.Description,
		s.Email,
		s.Phone,
		s.Location,
		s.ResumeURL,
		s.Logo,
		s.GithubURL,
		s.LinkedinURL,
		s.TwitterURL,
		s.InstagramURL,
		s.UpdatedAt,
	)
	if err != nil {
		return Setting{}, err
	}
	return s, nil
}
