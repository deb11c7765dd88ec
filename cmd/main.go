package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpctx "github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/context"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/router"
	httpServer "github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/server"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/config"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/metrics"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/password"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/repository/postgres"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/repository/sqlite"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/server"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/service"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/token"
)

const (
	serviceName     = "knowledge-base"
	shutdownTimeout = 10 * time.Second
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// store bundles the repositories of one database backend.
type store struct {
	users    model.UserStore
	articles model.ArticleStore
	pinger   model.Pinger
	closer   io.Closer
}

func main() {
	routes := flag.Bool("routes", false, "print Markdown route documentation and exit")
	flag.Parse()

	if *routes {
		fmt.Println(router.RoutesDoc(router.New(nil, nil, nil, nil, nil, nil, nil, nil).Register()))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig(".env")
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer func() {
		if err := st.closer.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	hasher, err := password.NewBcrypt(cfg.Password.BcryptCost)
	if err != nil {
		logger.Fatal("failed to create password hasher", "error", err)
	}
	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL), logger)
	authService, err := service.NewAuth(st.users, hasher, tokenService, logger)
	if err != nil {
		logger.Fatal("failed to create auth service", "error", err)
	}
	articleService := service.NewArticle(st.articles, st.users, logger)

	m, err := metrics.New(serviceName)
	if err != nil {
		logger.Fatal("failed to initialize metrics", "error", err)
	}

	r := router.New(authService, articleService, tokenService, httpctx.NewManager(), st.pinger, m, cfg.HTTP.CORSAllowedOrigins, logger)
	apiServer := httpServer.NewHTTPServer(r.Register(), net.JoinHostPort("", cfg.HTTP.Port), httpServer.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	servers := []runningServer{{server: apiServer, securityLayer: sl, name: "api"}}
	if cfg.Diag.Port != "" {
		diagServer := httpServer.NewHTTPServer(m.Router(), net.JoinHostPort("", cfg.Diag.Port), httpServer.Timeouts{
			Read: cfg.HTTP.ReadTimeout,
			Idle: cfg.HTTP.IdleTimeout,
		})
		servers = append(servers, runningServer{server: diagServer, securityLayer: server.NewPlainListener(), name: "diag"})
	}

	logAppVersion()

	if err := run(ctx, logger, servers); err != nil {
		logger.Error("server stopped with error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := m.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down metrics", "error", err)
	}

	logger.Info("shutdown complete")
}

type runningServer struct {
	server        model.Server
	securityLayer model.SecurityLayer
	name          string
}

// run starts every server and stops all of them when ctx is cancelled or
// any one of them fails.
func run(ctx context.Context, logger *logger.Logger, servers []runningServer) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, rs := range servers {
		rs := rs
		g.Go(func() error {
			logger.Info("Starting server on", "name", rs.name, "address", rs.server.Address())
			if err := rs.server.Start(rs.securityLayer); err != nil {
				return fmt.Errorf("%s server: %w", rs.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, rs := range servers {
			if err := rs.server.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "name", rs.name, "address", rs.server.Address(), "error", err)
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Database, logger *logger.Logger) (store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.DSN, logger)
		if err != nil {
			return store{}, err
		}
		return store{
			users:    sqlite.NewUserRepository(conn),
			articles: sqlite.NewArticleRepository(conn),
			pinger:   conn,
			closer:   conn,
		}, nil
	default:
		conn, err := postgres.NewConnection(ctx, cfg.DSN, logger)
		if err != nil {
			return store{}, err
		}
		return store{
			users:    postgres.NewUserRepository(conn),
			articles: postgres.NewArticleRepository(conn),
			pinger:   conn,
			closer:   conn,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
