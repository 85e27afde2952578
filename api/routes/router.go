package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avikapoor/basketline-backend/api/controllers"
	"github.com/avikapoor/basketline-backend/api/middleware"
	"github.com/avikapoor/basketline-backend/internal/auth"
	"github.com/avikapoor/basketline-backend/internal/exports"
	"github.com/avikapoor/basketline-backend/internal/lists"
	"github.com/avikapoor/basketline-backend/internal/reports"
	"github.com/avikapoor/basketline-backend/internal/shares"
	"github.com/avikapoor/basketline-backend/pkg/auth/session"
	"github.com/avikapoor/basketline-backend/pkg/config"
	"github.com/avikapoor/basketline-backend/pkg/db"
	"github.com/avikapoor/basketline-backend/pkg/logger"
	"github.com/avikapoor/basketline-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionManager sessionManager,
	authService auth.Service,
	registerService auth.RegisterService,
	listsService lists.Service,
	sharesService shares.Service,
	reportsService reports.Service,
	exportsService exports.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg), middleware.Idempotency(redisClient, logg)).Post("/register", controllers.AuthRegister(registerService, authService, logg))
		r.Post("/logout", controllers.AuthLogout(sessionManager, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(sessionManager, cfg.JWT, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/lists", func(r chi.Router) {
			r.Get("/", controllers.ListIndex(listsService, logg))
			r.Post("/", controllers.ListCreate(listsService, logg))
			r.Route("/{listId}", func(r chi.Router) {
				r.Get("/", controllers.ListGet(listsService, logg))
				r.Put("/", controllers.ListUpdate(listsService, logg))
				r.Delete("/", controllers.ListDelete(listsService, logg))
				r.Route("/shares", func(r chi.Router) {
					r.Get("/", controllers.ShareIndex(sharesService, logg))
					r.Post("/", controllers.ShareCreate(sharesService, logg))
					r.Delete("/{userId}", controllers.ShareDelete(sharesService, logg))
				})
			})
		})

		r.Get("/v1/reports/summary", controllers.ReportSummary(reportsService, logg))
		r.Get("/v1/exports/lists", controllers.ExportLists(exportsService, logg))
	})

	return r
}
