package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/access"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

type Article struct {
	articleStore model.ArticleStore
	userStore    model.UserStore
	logger       *logger.Logger
	now          func() time.Time
}

func NewArticle(
	articleStore model.ArticleStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Article {
	return &Article{
		articleStore: articleStore,
		userStore:    userStore,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new article owned by viewer.
func (s *Article) Create(ctx context.Context, viewer model.Viewer, params model.CreateArticleParams) (model.Article, error) {
	if viewer.IsAnonymous() {
		return model.Article{}, apierror.NewErrMissingAuthorizationToken()
	}

	if err := validateText("title", params.Title); err != nil {
		return model.Article{}, err
	}
	if err := validateText("content", params.Content); err != nil {
		return model.Article{}, err
	}

	_, err := s.userStore.GetByID(ctx, viewer.UserID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.InfoContext(ctx, "Article service: token owner no longer exists",
			"user_id", viewer.UserID)
		return model.Article{}, apierror.NewErrUserNotFound()
	}
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	isPublic := true
	if params.IsPublic != nil {
		isPublic = *params.IsPublic
	}

	now := s.now()
	article := model.Article{
		ID:        uuid.New(),
		OwnerID:   viewer.UserID,
		Title:     params.Title,
		Content:   params.Content,
		Tags:      model.NormalizeTags(params.Tags),
		IsPublic:  isPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	article, err = s.articleStore.Create(ctx, article)
	if err != nil {
		s.logger.ErrorContext(ctx, "Article service: failed to create article",
			"user_id", viewer.UserID,
			"error", err.Error())
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	s.logger.InfoContext(ctx, "Article service: article created",
		"article_id", article.ID,
		"user_id", viewer.UserID)

	return article, nil
}

// List returns public articles, optionally restricted to those sharing a tag
// with tags.
func (s *Article) List(ctx context.Context, tags []string) ([]model.Article, error) {
	articles, err := s.articleStore.ListPublic(ctx, model.NormalizeTags(tags))
	if err != nil {
		return nil, fmt.Errorf("failed to list public articles: %w", err)
	}
	if articles == nil {
		articles = []model.Article{}
	}

	return articles, nil
}

func (s *Article) Get(ctx context.Context, viewer model.Viewer, id uuid.UUID) (model.Article, error) {
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return model.Article{}, err
	}

	if err := access.CanRead(viewer, article); err != nil {
		s.logger.InfoContext(ctx, "Article service: read denied",
			"article_id", id,
			"user_id", viewer.UserID)
		return model.Article{}, apierror.NewErrForbidden(err)
	}

	return article, nil
}

// Update applies patch to the article. Only the owner may update it.
func (s *Article) Update(ctx context.Context, viewer model.Viewer, id uuid.UUID, patch model.ArticlePatch) (model.Article, error) {
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return model.Article{}, err
	}

	if err := access.CanWrite(viewer, article); err != nil {
		s.logger.InfoContext(ctx, "Article service: update denied",
			"article_id", id,
			"user_id", viewer.UserID)
		return model.Article{}, apierror.NewErrForbidden(err)
	}

	if patch.Title != nil {
		if err := validateText("title", *patch.Title); err != nil {
			return model.Article{}, err
		}
	}
	if patch.Content != nil {
		if err := validateText("content", *patch.Content); err != nil {
			return model.Article{}, err
		}
	}

	updated := patch.Apply(article)
	updated.UpdatedAt = s.now()

	updated, err = s.articleStore.Update(ctx, updated)
	if errors.Is(err, model.ErrNotFound) {
		return model.Article{}, apierror.NewErrArticleNotFound(id.String())
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Article service: failed to update article",
			"article_id", id,
			"error", err.Error())
		return model.Article{}, fmt.Errorf("failed to update article: %w", err)
	}

	s.logger.InfoContext(ctx, "Article service: article updated",
		"article_id", id,
		"user_id", viewer.UserID)

	return updated, nil
}

// Delete removes the article permanently. Only the owner may delete it.
func (s *Article) Delete(ctx context.Context, viewer model.Viewer, id uuid.UUID) error {
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return err
	}

	if err := access.CanWrite(viewer, article); err != nil {
		s.logger.InfoContext(ctx, "Article service: delete denied",
			"article_id", id,
			"user_id", viewer.UserID)
		return apierror.NewErrForbidden(err)
	}

	err = s.articleStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrArticleNotFound(id.String())
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Article service: failed to delete article",
			"article_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.logger.InfoContext(ctx, "Article service: article deleted",
		"article_id", id,
		"user_id", viewer.UserID)

	return nil
}

func (s *Article) getArticle(ctx context.Context, id uuid.UUID) (model.Article, error) {
	article, err := s.articleStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Article{}, apierror.NewErrArticleNotFound(id.String())
	}
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apierror.NewErrValidation("%s must not be empty", field)
	}
	return nil
}
