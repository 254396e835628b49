package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/mealroll/console-backend-go/internal/config"
	"github.com/mealroll/console-backend-go/internal/handler/http/middleware"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	Config            *config.Config
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	EmployeeHandler   EmployeeHandler
	AttendanceHandler AttendanceHandler
	MenuHandler       MenuHandler
	InsightsHandler   InsightsHandler
	ReportHandler     ReportHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "mealroll-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", deps.AuthHandler.Logout)
				r.Patch("/profile", deps.AuthHandler.UpdateProfile)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.ListEmployees)
				r.Post("/", deps.EmployeeHandler.CreateEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.EmployeeHandler.GetEmployee)
					r.Patch("/", deps.EmployeeHandler.UpdateEmployee)
					r.Delete("/", deps.EmployeeHandler.DeleteEmployee)
					r.Post("/snapshot", deps.ReportHandler.GenerateEmployeeSnapshot)
					r.Get("/qr", deps.ReportHandler.GenerateEmployeeQR)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", deps.AttendanceHandler.ListAttendance)
				r.Post("/", deps.AttendanceHandler.RecordAttendance)
			})

			r.Route("/food-menus", func(r chi.Router) {
				r.Get("/", deps.MenuHandler.ListMenus)
				r.Post("/", deps.MenuHandler.CreateMenu)
				r.Route("/{id}", func(r chi.Router) {
					r.Patch("/", deps.MenuHandler.UpdateMenu)
					r.Delete("/", deps.MenuHandler.DeleteMenu)
				})
			})

			r.Route("/insights", func(r chi.Router) {
				r.Get("/dashboard", deps.InsightsHandler.GetDashboard)
				r.Get("/daily-summary", deps.InsightsHandler.GetDailySummary)
				r.Get("/monthly-series", deps.InsightsHandler.GetMonthlySeries)
				r.Get("/menu-distribution", deps.InsightsHandler.GetMenuDistribution)
				r.Get("/recent-feed", deps.InsightsHandler.GetRecentFeed)
				r.Get("/consumption-ledger", deps.InsightsHandler.GetConsumptionLedger)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/attendance", deps.ReportHandler.GenerateAttendanceReport)
			})
		})
	})

	// Generated artifacts are served as plain files.
	exportDir, _ := filepath.Abs(deps.Config.Export.BasePath)
	fileServer := http.StripPrefix("/downloads/", http.FileServer(http.Dir(exportDir)))
	r.Get("/downloads/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
