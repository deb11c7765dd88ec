package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

// CredentialsRequest is the body of register and login requests.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *CredentialsRequest) Bind(_ *http.Request) error {
	return nil
}

// CreateArticleRequest is the body of POST /articles.
type CreateArticleRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPublic *bool    `json:"isPublic"`
}

func (a *CreateArticleRequest) Bind(_ *http.Request) error {
	a.Tags = model.NormalizeTags(a.Tags)
	return nil
}

func (a *CreateArticleRequest) params() model.CreateArticleParams {
	return model.CreateArticleParams{
		Title:    a.Title,
		Content:  a.Content,
		Tags:     a.Tags,
		IsPublic: a.IsPublic,
	}
}

// UpdateArticleRequest is the body of PUT /articles/{id}. Absent fields are
// left unchanged; owner fields in the body are ignored.
type UpdateArticleRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPublic *bool     `json:"isPublic"`
}

func (a *UpdateArticleRequest) Bind(_ *http.Request) error {
	return nil
}

func (a *UpdateArticleRequest) patch() model.ArticlePatch {
	return model.ArticlePatch{
		Title:    a.Title,
		Content:  a.Content,
		Tags:     a.Tags,
		IsPublic: a.IsPublic,
	}
}

type ArticleResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPublic  bool      `json:"isPublic"`
	Author    uuid.UUID `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewArticleResponse(a model.Article) *ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return &ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Tags:      tags,
		IsPublic:  a.IsPublic,
		Author:    a.OwnerID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (a *ArticleResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewArticleListResponse(articles []model.Article) []render.Renderer {
	list := make([]render.Renderer, 0, len(articles))
	for _, article := range articles {
		list = append(list, NewArticleResponse(article))
	}
	return list
}

type RegisterResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func (rr *RegisterResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusCreated)
	return nil
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (lr *LoginResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (mr *MessageResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (hr *HealthResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}
