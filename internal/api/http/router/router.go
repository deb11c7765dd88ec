package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/handler"
	httpmiddleware "github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/middleware"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/response"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/metrics"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

const projectPath = "github.com/Rahimov97/Another-Knowelege-Base"

// Router wires handlers and middleware into a chi mux.
type Router struct {
	authService    handler.AuthService
	articleService handler.ArticleService
	tokenService   httpmiddleware.TokenService
	contextManager model.ContextManager
	pinger         model.Pinger
	metrics        *metrics.Metrics
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a Router. metrics may be nil, in which case requests are not
// measured.
func New(
	authService handler.AuthService,
	articleService handler.ArticleService,
	tokenService httpmiddleware.TokenService,
	contextManager model.ContextManager,
	pinger model.Pinger,
	metrics *metrics.Metrics,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		articleService: articleService,
		tokenService:   tokenService,
		contextManager: contextManager,
		pinger:         pinger,
		metrics:        metrics,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the API mux.
func (r *Router) Register() *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(httpmiddleware.NewLogging(r.logger).Handle)
	if r.metrics != nil {
		mux.Use(r.metrics.Middleware)
	}
	mux.Use(middleware.Recoverer)
	mux.Use(cors.New(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)
	mux.Use(render.SetContentType(render.ContentTypeJSON))

	mux.NotFound(r.notFound)
	mux.MethodNotAllowed(r.methodNotAllowed)

	health := handler.NewHealth(r.pinger, r.logger)
	mux.Get("/", health.Root)
	mux.Get("/health", health.Check)

	r.registerAuthRoutes(mux)
	r.registerArticleRoutes(mux)

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	auth := handler.NewAuth(r.authService, r.logger)

	mux.Route("/auth", func(rt chi.Router) {
		rt.Post("/register", auth.Register)
		rt.Post("/login", auth.Login)
	})
}

func (r *Router) registerArticleRoutes(mux chi.Router) {
	authenticate := httpmiddleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	articles := handler.NewArticle(r.articleService, r.contextManager, r.logger)

	mux.Route("/articles", func(rt chi.Router) {
		rt.Get("/", articles.List)
		rt.With(authenticate.Required).Post("/", articles.Create)

		rt.Route("/{"+handler.ArticleParam+"}", func(rt chi.Router) {
			rt.With(authenticate.Optional).Get("/", articles.Get)
			rt.With(authenticate.Required).Put("/", articles.Update)
			rt.With(authenticate.Required).Delete("/", articles.Delete)
		})
	})
}

// RoutesDoc renders Markdown documentation of every route in mux.
func RoutesDoc(mux chi.Router) string {
	return docgen.MarkdownRoutesDoc(mux, docgen.MarkdownOpts{
		ProjectPath: projectPath,
		Intro:       "Knowledge base REST API routes.",
	})
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.Error(w, req, r.logger, apierror.NewErrRouteNotFound(req.URL.Path))
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, req, r.logger, apierror.NewErrMethodNotAllowed(req.Method))
}
