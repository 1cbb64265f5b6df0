package http

import (
	"net/http"

	"healfinity-backend/internal/delivery/http/handler"
	"healfinity-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	healthHandler       *handler.HealthHandler
	favoriteHandler     *handler.FavoriteHandler
	consultationHandler *handler.ConsultationHandler
	yogaSessionHandler  *handler.YogaSessionHandler
	symptomHandler      *handler.SymptomHandler
	catalogHandler      *handler.CatalogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	favoriteHandler *handler.FavoriteHandler,
	consultationHandler *handler.ConsultationHandler,
	yogaSessionHandler *handler.YogaSessionHandler,
	symptomHandler *handler.SymptomHandler,
	catalogHandler *handler.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		healthHandler:       healthHandler,
		favoriteHandler:     favoriteHandler,
		consultationHandler: consultationHandler,
		yogaSessionHandler:  yogaSessionHandler,
		symptomHandler:      symptomHandler,
		catalogHandler:      catalogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Service health check. /health-data below belongs to user metrics.
	api.HandleFunc("/healthz", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Everything below is per-user data
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/health-data", r.healthHandler.Save).Methods(http.MethodPost)
	protected.HandleFunc("/health-data/today", r.healthHandler.GetToday).Methods(http.MethodGet)

	protected.HandleFunc("/favorites", r.favoriteHandler.Add).Methods(http.MethodPost)
	protected.HandleFunc("/favorites", r.favoriteHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/favorites/{itemType}/{itemID}", r.favoriteHandler.Remove).Methods(http.MethodDelete)

	protected.HandleFunc("/consultations", r.consultationHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/consultations", r.consultationHandler.List).Methods(http.MethodGet)

	protected.HandleFunc("/yoga-sessions", r.yogaSessionHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/yoga-sessions", r.yogaSessionHandler.List).Methods(http.MethodGet)

	protected.HandleFunc("/symptoms", r.symptomHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/symptoms", r.symptomHandler.List).Methods(http.MethodGet)

	// Provider catalog (public read)
	api.HandleFunc("/catalog/doctors", r.catalogHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/catalog/instructors", r.catalogHandler.ListInstructors).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
