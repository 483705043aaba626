package main

import (
	"fmt"
	"net/http"

	"github.com/timewatch/timewatch-backend-go/internal/config"
	appHTTP "github.com/timewatch/timewatch-backend-go/internal/handler/http"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/cron"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/jwt"
	"github.com/timewatch/timewatch-backend-go/internal/repository/postgresql"
	authService "github.com/timewatch/timewatch-backend-go/internal/service/auth"
	companyService "github.com/timewatch/timewatch-backend-go/internal/service/company"
	punchService "github.com/timewatch/timewatch-backend-go/internal/service/punch"
	reportService "github.com/timewatch/timewatch-backend-go/internal/service/report"
	userService "github.com/timewatch/timewatch-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	companySvc := companyService.NewCompanyService(companyRepo)
	punchSvc := punchService.NewPunchService(punchRepo, userRepo)
	reportSvc := reportService.NewReportService(userRepo, companyRepo, punchRepo)

	scheduler := cron.NewScheduler()
	cron.NewPunchJobs(punchSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		companyHandler,
		punchHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
