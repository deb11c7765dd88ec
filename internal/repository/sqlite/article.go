package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

var _ model.ArticleStore = (*ArticleRepository)(nil)

const articleColumns = `id, owner_id, title, content, tags, is_public, created_at, updated_at`

type ArticleRepository struct {
	conn *Connection
}

func NewArticleRepository(conn *Connection) *ArticleRepository {
	return &ArticleRepository{conn: conn}
}

func (r *ArticleRepository) Create(ctx context.Context, article model.Article) (model.Article, error) {
	tags, err := encodeTags(article.Tags)
	if err != nil {
		return model.Article{}, err
	}

	row := r.conn.db.QueryRowContext(ctx,
		`INSERT INTO articles (`+articleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+articleColumns,
		article.ID.String(), article.OwnerID.String(), article.Title, article.Content, tags,
		article.IsPublic, toUnix(article.CreatedAt), toUnix(article.UpdatedAt),
	)
	saved, err := scanArticle(row)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}
	return saved, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Article, error) {
	row := r.conn.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id.String())
	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to get article by id: %w", err)
	}
	return article, nil
}

func (r *ArticleRepository) ListPublic(ctx context.Context, tags []string) ([]model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE is_public = 1`
	args := make([]any, 0, len(tags))
	if len(tags) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tags)), ",")
		query += ` AND EXISTS (SELECT 1 FROM json_each(articles.tags) WHERE json_each.value IN (` + placeholders + `))`
		for _, tag := range tags {
			args = append(args, tag)
		}
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.conn.db.QueryContext(ctx, query, args...)
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
	tags, err := encodeTags(article.Tags)
	if err != nil {
		return model.Article{}, err
	}

	row := r.conn.db.QueryRowContext(ctx,
		`UPDATE articles SET title = ?, content = ?, tags = ?, is_public = ?, updated_at = ?
		 WHERE id = ? RETURNING `+articleColumns,
		article.Title, article.Content, tags, article.IsPublic, toUnix(article.UpdatedAt), article.ID.String(),
	)
	saved, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to update article: %w", err)
	}
	return saved, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.conn.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (model.Article, error) {
	var (
		a                    model.Article
		tags                 string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Content, &tags, &a.IsPublic, &createdAt, &updatedAt); err != nil {
		return model.Article{}, err
	}
	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		return model.Article{}, fmt.Errorf("failed to decode tags: %w", err)
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.CreatedAt = fromUnix(createdAt)
	a.UpdatedAt = fromUnix(updatedAt)
	return a, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}
