package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/config"
	appHTTP "github.com/mealroll/console-backend-go/internal/handler/http"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/pkg/sessionstore"
	"github.com/mealroll/console-backend-go/internal/pkg/storage"
	attendanceService "github.com/mealroll/console-backend-go/internal/service/attendance"
	serviceAuth "github.com/mealroll/console-backend-go/internal/service/auth"
	employeeService "github.com/mealroll/console-backend-go/internal/service/employee"
	insightsService "github.com/mealroll/console-backend-go/internal/service/insights"
	menuService "github.com/mealroll/console-backend-go/internal/service/menu"
	reportService "github.com/mealroll/console-backend-go/internal/service/report"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	backend := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	sessionStore, err := sessionstore.New(cfg.Session.StorePath, cfg.Session.Key)
	if err != nil {
		log.Fatal("Failed to initialize session store:", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Export.BasePath, cfg.Export.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize artifact storage:", err)
	}

	authSvc := serviceAuth.NewAuthService(backend, JWTService, sessionStore)
	employeeSvc := employeeService.NewEmployeeService(backend)
	attendanceSvc := attendanceService.NewAttendanceService(backend)
	menuSvc := menuService.NewMenuService(backend)
	insightsSvc := insightsService.NewInsightsService(backend)
	reportSvc := reportService.NewReportService(backend, fileStorage)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:            cfg,
		JWTService:        JWTService,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		MenuHandler:       appHTTP.NewMenuHandler(menuSvc),
		InsightsHandler:   appHTTP.NewInsightsHandler(insightsSvc),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
