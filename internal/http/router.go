package http

import (
	"qsplan-backend/internal/handlers"
	"qsplan-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	itemHandler *handlers.ItemHandler,
	templateHandler *handlers.TemplateHandler,
	knowledgeBaseHandler *handlers.KnowledgeBaseHandler,
	dashboardHandler *handlers.DashboardHandler,
	exportHandler *handlers.ExportHandler,
	fileHandler *handlers.FileHandler,
	activityHandler *handlers.ActivityHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.Detailed).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Profile and notifications
	profileAPI := r.PathPrefix("/api/profile").Subrouter()
	profileAPI.Use(authMiddleware.Authenticate)
	profileAPI.HandleFunc("", userHandler.Profile).Methods("GET")
	profileAPI.HandleFunc("", userHandler.UpdateProfile).Methods("PUT")

	notificationsAPI := r.PathPrefix("/api/notifications").Subrouter()
	notificationsAPI.Use(authMiddleware.Authenticate)
	notificationsAPI.HandleFunc("", userHandler.Notifications).Methods("GET")

	// User management, admin only
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.List).Methods("GET")
	usersAPI.HandleFunc("/password-resets", userHandler.PasswordResets).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.Update).Methods("PUT")

	// Projects and their checklists
	projectsAPI := r.PathPrefix("/api/projects").Subrouter()
	projectsAPI.Use(authMiddleware.Authenticate)
	projectsAPI.HandleFunc("", projectHandler.List).Methods("GET")
	projectsAPI.HandleFunc("", projectHandler.Create).Methods("POST")
	projectsAPI.HandleFunc("/{id}", projectHandler.Get).Methods("GET")
	projectsAPI.HandleFunc("/{id}", projectHandler.Update).Methods("PUT")
	projectsAPI.HandleFunc("/{id}/history", dashboardHandler.ProjectActivity).Methods("GET")
	projectsAPI.HandleFunc("/{id}/export", exportHandler.ChecklistPDF).Methods("GET")

	projectsAPI.HandleFunc("/{id}/items", itemHandler.List).Methods("GET")
	projectsAPI.HandleFunc("/{id}/items", itemHandler.Add).Methods("POST")
	projectsAPI.HandleFunc("/{id}/items/{key}", itemHandler.Delete).Methods("DELETE")
	projectsAPI.HandleFunc("/{id}/items/{key}/measure", itemHandler.UpdateMeasure).Methods("PUT")
	projectsAPI.HandleFunc("/{id}/items/{key}/documents", itemHandler.UpdateDocuments).Methods("PUT")
	projectsAPI.HandleFunc("/{id}/items/{key}/remarks", itemHandler.UpdateRemarks).Methods("PUT")
	projectsAPI.HandleFunc("/{id}/items/{key}/status", itemHandler.ChangeStatus).Methods("PUT")

	// Checklist templates, reviewer managed
	templatesAPI := r.PathPrefix("/api/templates").Subrouter()
	templatesAPI.Use(authMiddleware.Authenticate)
	templatesAPI.HandleFunc("", templateHandler.List).Methods("GET")
	templatesAPI.HandleFunc("/{id}", templateHandler.Get).Methods("GET")

	templatesAdminAPI := r.PathPrefix("/api/templates").Subrouter()
	templatesAdminAPI.Use(authMiddleware.RequireReviewer)
	templatesAdminAPI.HandleFunc("", templateHandler.Create).Methods("POST")
	templatesAdminAPI.HandleFunc("/{id}", templateHandler.Update).Methods("PUT")
	templatesAdminAPI.HandleFunc("/{id}", templateHandler.Delete).Methods("DELETE")

	// Knowledge base
	kbAPI := r.PathPrefix("/api/knowledge-base").Subrouter()
	kbAPI.Use(authMiddleware.Authenticate)
	kbAPI.HandleFunc("", knowledgeBaseHandler.List).Methods("GET")
	kbAPI.HandleFunc("/item/{id}", knowledgeBaseHandler.Get).Methods("GET")

	kbAdminAPI := r.PathPrefix("/api/knowledge-base").Subrouter()
	kbAdminAPI.Use(authMiddleware.RequireReviewer)
	kbAdminAPI.HandleFunc("", knowledgeBaseHandler.Create).Methods("POST")
	kbAdminAPI.HandleFunc("/item/{id}", knowledgeBaseHandler.Update).Methods("PUT")
	kbAdminAPI.HandleFunc("/item/{id}", knowledgeBaseHandler.Delete).Methods("DELETE")

	// Dashboard and activity feed
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/statistics", dashboardHandler.Statistics).Methods("GET")

	// The live feed authenticates via query token inside the handler, see
	// ActivityHandler.Stream
	r.HandleFunc("/api/history/live", activityHandler.Stream).Methods("GET")

	historyAPI := r.PathPrefix("/api/history").Subrouter()
	historyAPI.Use(authMiddleware.Authenticate)
	historyAPI.HandleFunc("", dashboardHandler.RecentActivity).Methods("GET")

	// Staged file uploads
	filesAPI := r.PathPrefix("/api/files").Subrouter()
	filesAPI.Use(authMiddleware.Authenticate)
	filesAPI.HandleFunc("", fileHandler.Upload).Methods("POST")

	return r
}
