package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/response"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

// ArticleParam is the URL parameter holding the article ID.
const ArticleParam = "articleID"

// ArticleService defines article operations. Every call that depends on who
// is asking takes the viewer explicitly.
type ArticleService interface {
	Create(ctx context.Context, viewer model.Viewer, params model.CreateArticleParams) (model.Article, error)
	List(ctx context.Context, tags []string) ([]model.Article, error)
	Get(ctx context.Context, viewer model.Viewer, id uuid.UUID) (model.Article, error)
	Update(ctx context.Context, viewer model.Viewer, id uuid.UUID, patch model.ArticlePatch) (model.Article, error)
	Delete(ctx context.Context, viewer model.Viewer, id uuid.UUID) error
}

// Article handles the /articles endpoints.
type Article struct {
	articleService ArticleService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewArticle(articleService ArticleService, contextManager model.ContextManager, logger *logger.Logger) *Article {
	return &Article{
		articleService: articleService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Article) Create(w http.ResponseWriter, r *http.Request) {
	data := &CreateArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		response.Error(w, r, h.logger, apierror.NewErrInvalidRequestBody(err))
		return
	}

	viewer := h.contextManager.GetViewerFromContext(r.Context())

	article, err := h.articleService.Create(r.Context(), viewer, data.params())
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	h.render(w, r, NewArticleResponse(article))
}

// List returns public articles, filtered by the comma separated tags query.
func (h *Article) List(w http.ResponseWriter, r *http.Request) {
	tags := model.ParseTagFilter(r.URL.Query().Get("tags"))

	articles, err := h.articleService.List(r.Context(), tags)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	if err := render.RenderList(w, r, NewArticleListResponse(articles)); err != nil {
		h.logger.ErrorContext(r.Context(), "Article handler: failed to render list",
			"error", err.Error())
	}
}

func (h *Article) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	viewer := h.contextManager.GetViewerFromContext(r.Context())

	article, err := h.articleService.Get(r.Context(), viewer, id)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	h.render(w, r, NewArticleResponse(article))
}

func (h *Article) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	data := &UpdateArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		response.Error(w, r, h.logger, apierror.NewErrInvalidRequestBody(err))
		return
	}

	viewer := h.contextManager.GetViewerFromContext(r.Context())

	article, err := h.articleService.Update(r.Context(), viewer, id, data.patch())
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	h.render(w, r, NewArticleResponse(article))
}

func (h *Article) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	viewer := h.contextManager.GetViewerFromContext(r.Context())

	if err := h.articleService.Delete(r.Context(), viewer, id); err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	h.render(w, r, &MessageResponse{Message: "article deleted"})
}

// articleID parses the URL parameter. An ID that is not a UUID cannot name
// an article, so it is reported as not found.
func (h *Article) articleID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, ArticleParam)
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(w, r, h.logger, apierror.NewErrArticleNotFound(raw))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Article) render(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.logger.ErrorContext(r.Context(), "Article handler: failed to render response",
			"error", err.Error())
	}
}
