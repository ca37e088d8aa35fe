package http

import (
	"net/http"

	"github.com/family-safety-api/internal/application/family"
	"github.com/family-safety-api/internal/application/incident"
	"github.com/family-safety-api/internal/application/notification"
	"github.com/family-safety-api/internal/application/safety"
	"github.com/family-safety-api/internal/config"
	"github.com/family-safety-api/internal/domain"
	jwtinfra "github.com/family-safety-api/internal/infrastructure/jwt"
	"github.com/family-safety-api/internal/infrastructure/smtp"
	"github.com/family-safety-api/internal/infrastructure/sns"
	"github.com/family-safety-api/internal/transport/http/handler"
	appmiddleware "github.com/family-safety-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	IncidentRepo     IncidentRepository
	NotificationRepo NotificationRepository
	FamilyRepo       FamilyRepository
	ChildRepo        ChildRepository
	Resolver         FamilyResolver
	SMSSender        sns.SMSSender // optional
	Mailer           smtp.Mailer   // optional
	JWTProvider      *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// The evaluate route sees every chat message, so its limit is generous;
	// family registration is rare and tightly limited.
	evaluateRL := appmiddleware.NewRateLimiter(rate.Limit(50), 100)
	registerRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	safetySvc := safety.NewService(safety.ServiceDeps{
		Resolver:      deps.Resolver,
		Incidents:     deps.IncidentRepo,
		Notifications: deps.NotificationRepo,
		SMSSender:     deps.SMSSender,
		Mailer:        deps.Mailer,
	})
	incidentSvc := incident.NewService(deps.IncidentRepo)
	notifSvc := notification.NewService(deps.NotificationRepo)
	familySvc := family.NewService(deps.FamilyRepo, deps.ChildRepo)

	healthH := handler.NewHealthHandler()
	safetyH := handler.NewSafetyHandler(safetySvc)
	incidentH := handler.NewIncidentHandler(incidentSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	familyH := handler.NewFamilyHandler(familySvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			// Trusted chat-handler / membership-service callers.
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleService))

				r.With(evaluateRL.Limit).Post("/safety/evaluations", safetyH.Evaluate)
				r.With(registerRL.Limit).Post("/families", familyH.Create)
				r.Post("/families/{id}/children", familyH.AddChild)
				r.Get("/families/{id}/children", familyH.ListChildren)
			})

			// Guardian review surface.
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.GuardianPrimary, domain.GuardianSecondary))

				r.Get("/incidents", incidentH.List)
				r.Put("/incidents/{id}/review", incidentH.MarkReviewed)
				r.Get("/notifications", notifH.ListUnread)
				r.Put("/notifications/{id}/read", notifH.MarkRead)
			})

			r.Get("/families/{id}", familyH.Get)
		})
	})

	return r
}
