package http

import (
	"log/slog"
	"os"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/handler/http/middleware"
	"github.com/digitopia/membership-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func newBaseRouter(service, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", service),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	return r
}

// NewInvitationRouter wires the invitation workflow endpoints
func NewInvitationRouter(JWTService jwt.Service, invitationHandler InvitationHandler, env string) *chi.Mux {
	r := newBaseRouter("invitation-api", env)

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/invitations", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionInvitationSend)).Post("/", invitationHandler.Create)
				r.With(middleware.RequirePermission(user.PermissionInvitationRespond)).Put("/{id}/status", invitationHandler.UpdateStatus)
				r.Get("/user/{userID}", invitationHandler.ListByUser)
				r.With(middleware.RequirePermission(user.PermissionInvitationViewAll)).Get("/organization/{organizationID}", invitationHandler.ListByOrganization)
				r.With(middleware.RequirePermission(user.PermissionInvitationDelete)).Delete("/{id}", invitationHandler.Delete)
			})
		})
	})

	return r
}

// NewRegistryRouter wires the user/organization registry endpoints
func NewRegistryRouter(JWTService jwt.Service, userHandler UserHandler, organizationHandler OrganizationHandler, env string) *chi.Mux {
	r := newBaseRouter("registry-api", env)

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionUserManage)).Post("/", userHandler.Create)
				r.With(middleware.RequirePermission(user.PermissionUserView)).Get("/search", userHandler.Search)
				r.With(middleware.RequirePermission(user.PermissionUserView)).Get("/lookup", userHandler.GetByEmail)
				r.With(middleware.RequirePermission(user.PermissionUserView)).Get("/organization/{organizationID}", userHandler.ListByOrganization)
				r.Get("/{id}", userHandler.GetByID)
				r.With(middleware.RequirePermission(user.PermissionUserManage)).Put("/{id}", userHandler.Update)
				r.Get("/{id}/organizations", userHandler.Organizations)
			})

			r.Route("/organizations", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionOrganizationManage)).Post("/", organizationHandler.Create)
				r.Get("/search", organizationHandler.Search)
				r.Get("/{id}", organizationHandler.GetByID)
				r.With(middleware.RequirePermission(user.PermissionOrganizationManage)).Put("/{id}", organizationHandler.Update)
			})
		})
	})

	return r
}
