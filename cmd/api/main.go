package main

import (
	"fmt"
	"net/http"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/config"
	appHTTP "github.com/Varunmathiazhagan/tap-academy-sub000/internal/handler/http"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/clock"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/database"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/jwt"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/repository/postgresql"
	attendanceService "github.com/Varunmathiazhagan/tap-academy-sub000/internal/service/attendance"
	authService "github.com/Varunmathiazhagan/tap-academy-sub000/internal/service/auth"
	reportService "github.com/Varunmathiazhagan/tap-academy-sub000/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	systemClock := clock.System()
	settings := cfg.AttendanceSettings()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, systemClock, settings)
	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, systemClock, settings)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		reportHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
