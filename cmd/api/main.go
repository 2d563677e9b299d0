package main

import (
	"fmt"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/worklog-hq/attendance-backend-go/internal/handler/http"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklog-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklog-hq/attendance-backend-go/internal/service/attendance"
	authService "github.com/worklog-hq/attendance-backend-go/internal/service/auth"
	reportService "github.com/worklog-hq/attendance-backend-go/internal/service/report"
	statsService "github.com/worklog-hq/attendance-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Location())
	statsSvc := statsService.NewStatsService(statsRepo, cfg.Location())
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, refreshTokenRepo, jwtSvc)

	healthHandler := appHTTP.NewHealthHandler(db)
	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		healthHandler,
		authHandler,
		attendanceHandler,
		statsHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
