package article

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listArticlesQuery = `
		SELECT article_id, title, slug, excerpt, body, cover_image, tags, published, published_at, created_at, updated_at
		FROM article
		ORDER BY COALESCE(published_at, created_at) DESC, article_id DESC
	`
	getArticleByIDQuery = `
		SELECT article_id, title, slug, excerpt, body, cover_image, tags, published, published_at, created_at, updated_at
		FROM article
		WHERE article_id = $1
	`
	getArticleBySlugQuery = `
		SELECT article_id, title, slug, excerpt, body, cover_image, tags, published, published_at, created_at, updated_at
		FROM article
		WHERE slug = $1
	`
	insertArticleQuery = `
		INSERT INTO article (title, slug, excerpt, body, cover_image, tags, published, published_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING article_id
	`
	updateArticleQuery = `
		UPDATE article
		SET title = $1,
			slug = $2,
			excerpt = $3,
			body = $4,
			cover_image = $5,
			tags = $6,
			published = $7,
			published_at = $8,
			updated_at = $9
		WHERE article_id = $10
	`
	deleteArticleQuery = `DELETE FROM article WHERE article_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Article, error) {
	rows, err := r.db.Query(listArticlesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Article, error) {
	a, err := scanArticle(r.db.QueryRow(getArticleByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Article{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Article, error) {
	a, err := scanArticle(r.db.QueryRow(getArticleBySlugQuery, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return Article{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) Create(a Article) (Article, error) {
	err := r.db.QueryRow(
		insertArticleQuery,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Body,
		a.CoverImage,
		pq.Array(a.Tags),
		a.Published,
		a.PublishedAt,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return Article{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Update(id int, a Article) (Article, error) {
	result, err := r.db.Exec(
		updateArticleQuery,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Body,
		a.CoverImage,
		pq.Array(a.Tags),
		a.Published,
		a.PublishedAt,
		a.UpdatedAt,
		id,
	)
	if err != nil {
		return Article{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Article{}, err
	}
	if affected == 0 {
		return Article{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteArticleQuery, id)
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

func (r *PostgresRepository) Reset(items []Article) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM article`); err != nil {
		return err
	}
	for _, a := range items {
		if _, err := tx.Exec(insertArticleQuery, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverImage, pq.Array(a.Tags), a.Published, a.PublishedAt, a.CreatedAt, a.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(scanner rowScanner) (Article, error) {
	a := Article{}
	var (
		title       sql.NullString
		slug        sql.NullString
		excerpt     sql.NullString
		body        sql.NullString
		coverImage  sql.NullString
		publishedAt sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)
	if err := scanner.Scan(
		&a.ID,
		&title,
		&slug,
		&excerpt,
		&body,
		&coverImage,
		pq.Array(&a.Tags),
		&a.Published,
		&publishedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Article{}, err
	}
	a.Title = title.String
	a.Slug = slug.String
	a.Excerpt = excerpt.String
	a.Body = body.String
	if coverImage.Valid {
		a.CoverImage = &coverImage.String
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.String
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.CreatedAt = createdAt.String
	a.UpdatedAt = updatedAt.String
	return a, nil
}
