package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/config"
	appHTTP "github.com/petrodesk/petrodesk-backend-go/internal/handler/http"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/cron"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/email"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/jwt"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/oauth"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/sse"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/storage"
	"github.com/petrodesk/petrodesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/petrodesk/petrodesk-backend-go/internal/service/attendance"
	authService "github.com/petrodesk/petrodesk-backend-go/internal/service/auth"
	companyService "github.com/petrodesk/petrodesk-backend-go/internal/service/company"
	contactService "github.com/petrodesk/petrodesk-backend-go/internal/service/contact"
	expenseService "github.com/petrodesk/petrodesk-backend-go/internal/service/expense"
	reportService "github.com/petrodesk/petrodesk-backend-go/internal/service/report"
	saleService "github.com/petrodesk/petrodesk-backend-go/internal/service/sale"
	stockService "github.com/petrodesk/petrodesk-backend-go/internal/service/stock"
	userService "github.com/petrodesk/petrodesk-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)
	stockRepo := postgresql.NewStockRepository(db)
	tankRepo := postgresql.NewTankRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	contactRepo := postgresql.NewContactRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, jwtService, emailService, googleService, cfg.App)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, hub)
	saleSvc := saleService.NewSaleService(saleRepo, userRepo)
	stockSvc := stockService.NewStockService(db, stockRepo, tankRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	contactSvc := contactService.NewContactService(contactRepo, emailService, cfg.App.ContactInbox)
	companySvc := companyService.NewCompanyService(companyRepo)
	reportSvc := reportService.NewReportService(saleRepo, userRepo, companyRepo, fileStorage)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		User:       appHTTP.NewUserHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, jwtService, hub),
		Sale:       appHTTP.NewSaleHandler(saleSvc),
		Stock:      appHTTP.NewStockHandler(stockSvc),
		Expense:    appHTTP.NewExpenseHandler(expenseSvc),
		Contact:    appHTTP.NewContactHandler(contactSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
