package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/somosmas/ong-api/internal/config"
	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/mail"
	"github.com/somosmas/ong-api/internal/middleware"
	"github.com/somosmas/ong-api/internal/module/activity"
	"github.com/somosmas/ong-api/internal/module/auth"
	"github.com/somosmas/ong-api/internal/module/category"
	"github.com/somosmas/ong-api/internal/module/comment"
	"github.com/somosmas/ong-api/internal/module/contact"
	"github.com/somosmas/ong-api/internal/module/member"
	"github.com/somosmas/ong-api/internal/module/news"
	"github.com/somosmas/ong-api/internal/module/organization"
	"github.com/somosmas/ong-api/internal/module/slide"
	"github.com/somosmas/ong-api/internal/module/testimonial"
	"github.com/somosmas/ong-api/internal/module/user"
	"github.com/somosmas/ong-api/internal/repository"
	"github.com/somosmas/ong-api/internal/storage"
	"github.com/somosmas/ong-api/internal/token"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the database, the unit-of-work store, the token,
// storage, and mail collaborators, every resource module, middleware, and
// routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate and seed in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.Organization{},
			&domain.News{},
			&domain.Activity{},
			&domain.Category{},
			&domain.Comment{},
			&domain.Member{},
			&domain.Testimonial{},
			&domain.Slide{},
			&domain.Contact{},
			&domain.User{},
			&domain.Role{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		if err := seedData(db, log.Logger); err != nil {
			return nil, fmt.Errorf("seed data: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Collaborators shared by the modules.
	store := repository.NewStore(db)

	tokens, err := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		return nil, fmt.Errorf("setup token service: %w", err)
	}

	images, err := storage.NewS3Store(context.Background(), storage.Config{
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("setup image store: %w", err)
	}

	mailer := mail.NewSender(mail.Config{
		APIKey:   cfg.Mail.SendGridKey,
		FromMail: cfg.Mail.FromMail,
		FromName: cfg.Mail.FromName,
	})

	authn := middleware.Authenticate(tokens)

	// 5. Manual dependency injection: service → handler → module.
	authSvc := auth.NewAuthService(store, tokens, images, mailer, cfg.Auth.TokenExpiryDuration(), auth.WelcomeMail{
		Title:   cfg.Mail.WelcomeTitle,
		Body:    cfg.Mail.WelcomeBody,
		Contact: cfg.Mail.WelcomeContact,
	})

	modules := []Module{
		auth.NewModule(auth.NewAuthHandler(authSvc), authn),
		user.NewModule(user.NewUserHandler(user.NewUserService(store, images)), authn),
		organization.NewModule(organization.NewOrganizationHandler(organization.NewOrganizationService(store, images)), authn),
		news.NewModule(news.NewNewsHandler(news.NewNewsService(store, images)), authn),
		activity.NewModule(activity.NewActivityHandler(activity.NewActivityService(store, images)), authn),
		category.NewModule(category.NewCategoryHandler(category.NewCategoryService(store, images)), authn),
		comment.NewModule(comment.NewCommentHandler(comment.NewCommentService(store)), authn),
		member.NewModule(member.NewMemberHandler(member.NewMemberService(store, images)), authn),
		testimonial.NewModule(testimonial.NewTestimonialHandler(testimonial.NewTestimonialService(store, images)), authn),
		slide.NewModule(slide.NewSlideHandler(slide.NewSlideService(store, images)), authn),
		contact.NewModule(contact.NewContactHandler(contact.NewContactService(store, mailer)), authn),
	}

	// 6. Create Gin engine with custom middleware (not gin.Default()).
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// In release mode, when no allowlist is configured, default to deny
	// cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestID(false),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 7. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: modules,
		DB:      db,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	if runErr != nil {
		return runErr
	}

	return nil
}
