package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/config"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Attendance AttendanceHandler
	Sale       SaleHandler
	Stock      StockHandler
	Expense    ExpenseHandler
	Contact    ContactHandler
	Company    CompanyHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "petrodesk-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Route("/login", func(r chi.Router) {
			r.Post("/", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Route("/password", func(r chi.Router) {
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
		})

		r.Route("/auth/oauth", func(r chi.Router) {
			r.Get("/google", h.Auth.LoginWithGoogle)
			r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
		})

		r.Post("/contact/create", h.Contact.Create)

		// SSE authenticates via a query-string stream token, so it sits
		// outside the Verifier chain.
		r.Get("/attendance/stream", h.Attendance.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.With(middleware.RequireSuperAdmin).Post("/registeradmin", h.User.RegisterAdmin)
			r.With(middleware.RequireSuperAdmin).Get("/listadmin", h.User.ListAdmins)
			r.With(middleware.RequireSuperAdmin).Get("/contact/messages", h.Contact.GetAll)

			r.With(middleware.RequireAdmin).Post("/registerstaff", h.User.RegisterStaff)
			r.With(middleware.RequireAdmin).Get("/staff", h.User.ListStaff)

			r.Route("/company", func(r chi.Router) {
				r.Get("/", h.Company.Get)
				r.With(middleware.RequireAdmin).Post("/", h.Company.Upsert)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/getattendance", h.Attendance.GetAttendance)
				r.With(middleware.RequireStaff).Post("/markattendance", h.Attendance.Mark)
				r.With(middleware.RequireStaff).Get("/session", h.Attendance.GetOpenSession)
				r.Get("/stream-token", h.Attendance.GetStreamToken)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/getall", h.Sale.GetAll)
				r.With(middleware.RequireStaff).Post("/create", h.Sale.Create)
			})

			r.Route("/stocks", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionStockManage))
				r.Get("/getall", h.Stock.GetAllStocks)
				r.Post("/createstock", h.Stock.CreateStock)
			})

			r.Route("/tanks", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionStockManage))
				r.Get("/getall", h.Stock.GetAllTanks)
				r.Post("/create", h.Stock.CreateTank)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionExpenseManage))
				r.Get("/getall", h.Expense.GetAll)
				r.Post("/create", h.Expense.Create)
				r.Put("/updateexpense/{id}", h.Expense.Update)
				r.Delete("/deleteexpense/{id}", h.Expense.Delete)
			})

			r.With(middleware.RequireAdmin).Get("/reports/sales", h.Report.ExportSales)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	return r
}
