package http

import (
	"net/http"

	"healthguard-api/internal/delivery/http/handler"
	"healthguard-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	recordHandler      *handler.HealthRecordHandler
	dailyLogHandler    *handler.DailyLogHandler
	assessmentHandler  *handler.RiskAssessmentHandler
	impactHandler      *handler.DiseaseImpactHandler
	reportHandler      *handler.MedicalReportHandler
	chatHandler        *handler.ChatHandler
	alertHandler       *handler.AlertHandler
	articleHandler     *handler.ArticleHandler
	translationHandler *handler.TranslationHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	recordHandler *handler.HealthRecordHandler,
	dailyLogHandler *handler.DailyLogHandler,
	assessmentHandler *handler.RiskAssessmentHandler,
	impactHandler *handler.DiseaseImpactHandler,
	reportHandler *handler.MedicalReportHandler,
	chatHandler *handler.ChatHandler,
	alertHandler *handler.AlertHandler,
	articleHandler *handler.ArticleHandler,
	translationHandler *handler.TranslationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		recordHandler:      recordHandler,
		dailyLogHandler:    dailyLogHandler,
		assessmentHandler:  assessmentHandler,
		impactHandler:      impactHandler,
		reportHandler:      reportHandler,
		chatHandler:        chatHandler,
		alertHandler:       alertHandler,
		articleHandler:     articleHandler,
		translationHandler: translationHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Translations (public, used before login)
	api.HandleFunc("/translations", r.translationHandler.ListLanguages).Methods(http.MethodGet)
	api.HandleFunc("/translations/{lang}", r.translationHandler.GetTranslations).Methods(http.MethodGet)

	// Everything else requires a valid access token
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Profile
	protected.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Health records
	protected.HandleFunc("/health-records", r.recordHandler.CreateRecord).Methods(http.MethodPost)
	protected.HandleFunc("/health-records", r.recordHandler.ListRecords).Methods(http.MethodGet)
	protected.HandleFunc("/health-records/latest", r.recordHandler.LatestRecord).Methods(http.MethodGet)

	// Daily logs
	protected.HandleFunc("/daily-logs", r.dailyLogHandler.UpsertLog).Methods(http.MethodPut)
	protected.HandleFunc("/daily-logs", r.dailyLogHandler.ListLogs).Methods(http.MethodGet)

	// Risk assessments
	protected.HandleFunc("/risk-assessments/generate", r.assessmentHandler.GenerateAssessment).Methods(http.MethodPost)
	protected.HandleFunc("/risk-assessments", r.assessmentHandler.ListAssessments).Methods(http.MethodGet)
	protected.HandleFunc("/risk-assessments/latest", r.assessmentHandler.LatestAssessment).Methods(http.MethodGet)

	// Disease impact insights
	protected.HandleFunc("/insights/generate", r.impactHandler.GenerateInsights).Methods(http.MethodPost)
	protected.HandleFunc("/insights", r.impactHandler.ListInsights).Methods(http.MethodGet)

	// Medical reports
	protected.HandleFunc("/reports", r.reportHandler.UploadReport).Methods(http.MethodPost)
	protected.HandleFunc("/reports", r.reportHandler.ListReports).Methods(http.MethodGet)
	protected.HandleFunc("/reports/types", r.reportHandler.ReportTypes).Methods(http.MethodGet)

	// Chat
	protected.HandleFunc("/chat/messages", r.chatHandler.SendMessage).Methods(http.MethodPost)
	protected.HandleFunc("/chat/messages", r.chatHandler.GetMessages).Methods(http.MethodGet)

	// Health alerts
	protected.HandleFunc("/health-alerts/states", r.alertHandler.ListStates).Methods(http.MethodGet)
	protected.HandleFunc("/health-alerts", r.alertHandler.ListAlerts).Methods(http.MethodGet)

	// Articles
	protected.HandleFunc("/articles/search", r.articleHandler.SearchArticles).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
