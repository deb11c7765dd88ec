package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ArticleStore defines persistence operations for articles.
type ArticleStore interface {
	Create(ctx context.Context, article Article) (Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (Article, error)
	// ListPublic returns public articles in creation order. A non-empty tags
	// slice keeps only articles sharing at least one tag with it.
	ListPublic(ctx context.Context, tags []string) ([]Article, error)
	Update(ctx context.Context, article Article) (Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Article is a knowledge base entry owned by the user who created it.
type Article struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	Tags      []string
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateArticleParams contains parameters to create an article.
type CreateArticleParams struct {
	Title    string
	Content  string
	Tags     []string
	IsPublic *bool
}

// ArticlePatch carries a partial update. Nil fields are left untouched.
type ArticlePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPublic *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.IsPublic == nil
}

// Apply merges the provided fields of p into a and returns the result.
// The owner and identifier are never touched.
func (p ArticlePatch) Apply(a Article) Article {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Tags != nil {
		a.Tags = NormalizeTags(*p.Tags)
	}
	if p.IsPublic != nil {
		a.IsPublic = *p.IsPublic
	}
	return a
}

// NormalizeTags turns tags into a set: entries are trimmed, empty ones
// dropped and duplicates collapsed in first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ParseTagFilter splits a comma separated tag list into a normalized set.
func ParseTagFilter(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(raw, ","))
}
