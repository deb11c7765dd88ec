package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

var _ model.ArticleStore = (*ArticleRepository)(nil)

const articleColumns = `id, owner_id, title, content, tags, is_public, created_at, updated_at`

type ArticleRepository struct {
	db *Connection
}

func NewArticleRepository(db *Connection) *ArticleRepository {
	return &ArticleRepository{
		db: db,
	}
}

func (r *ArticleRepository) Create(ctx context.Context, article model.Article) (model.Article, error) {
	query := `INSERT INTO articles (` + articleColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + articleColumns

	saved, err := scanArticle(r.db.QueryRow(ctx, query,
		article.ID, article.OwnerID, article.Title, article.Content, tagsOrEmpty(article.Tags),
		article.IsPublic, article.CreatedAt, article.UpdatedAt,
	))
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	return saved, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) ListPublic(ctx context.Context, tags []string) ([]model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE is_public`
	args := []any{}
	if len(tags) > 0 {
		query += ` AND tags && $1::text[]`
		args = append(args, tags)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list public articles: %w", err)
	}
	defer rows.Close()

	articles := make([]model.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepository) Update(ctx context.Context, article model.Article) (model.Article, error) {
	query := `UPDATE articles
			  SET title = $2, content = $3, tags = $4, is_public = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING ` + articleColumns

	saved, err := scanArticle(r.db.QueryRow(ctx, query,
		article.ID, article.Title, article.Content, tagsOrEmpty(article.Tags), article.IsPublic, article.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to update article: %w", err)
	}

	return saved, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanArticle(row pgx.Row) (model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Content, &a.Tags, &a.IsPublic, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Article{}, err
	}
	a.Tags = tagsOrEmpty(a.Tags)
	return a, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
