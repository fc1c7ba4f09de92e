package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hris-system/hris-backend-go/internal/handler/http/middleware"
	"github.com/hris-system/hris-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Division   DivisionHandler
	Config     ConfigHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Finance    FinanceHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/config", func(r chi.Router) {
					r.Get("/attendance", h.Config.GetAttendanceConfig)
					r.Put("/attendance", h.Config.UpdateAttendanceConfig)
					r.Get("/attendance/history", h.Config.AttendanceConfigHistory)

					r.Get("/salary", h.Config.ListSalaryConfigs)
					r.Put("/salary", h.Config.UpsertSalaryConfig)

					r.Route("/deductions", func(r chi.Router) {
						r.Get("/", h.Config.ListDeductionRules)
						r.Post("/", h.Config.CreateDeductionRule)
						r.Put("/{id}", h.Config.UpdateDeductionRule)
						r.Delete("/{id}", h.Config.RetireDeductionRule)
					})

					r.Get("/leave", h.Config.ListLeaveConfigs)
					r.Put("/leave", h.Config.UpsertLeaveConfig)
				})

				r.Route("/divisions", func(r chi.Router) {
					r.Get("/", h.Division.List)
					r.Post("/", h.Division.Create)
					r.Put("/{id}", h.Division.Rename)
					r.Delete("/{id}", h.Division.Retire)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Put("/{id}", h.User.Update)
				})
			})

			// Any authenticated employee
			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/me", h.Attendance.GetMyHistory)
				r.Get("/today", h.Attendance.GetToday)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/me", h.Payroll.MyPayslips)
				r.Get("/me/{id}", h.Payroll.MyPayslip)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", h.Leave.GetMyBalance)
				r.Get("/requests/me", h.Leave.GetMyHistory)
				r.Post("/requests", h.Leave.CreateRequest)
			})

			// HR only
			r.Route("/hr", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/attendance", h.Attendance.ListByDate)

				r.Route("/leave/requests", func(r chi.Router) {
					r.Get("/", h.Leave.ListAll)
					r.Put("/{id}/process", h.Leave.Process)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/generate", h.Payroll.Generate)
					r.Get("/draft", h.Payroll.ListDraft)
					r.Post("/send", h.Payroll.Submit)
					r.Get("/summary", h.Payroll.Summary)
				})
			})

			// Finance only
			r.Route("/finance", func(r chi.Router) {
				r.Use(middleware.RequireFinance)

				r.Route("/payments", func(r chi.Router) {
					r.Get("/", h.Finance.ListPending)
					r.Post("/{id}/pay", h.Finance.Pay)
					r.Get("/history", h.Finance.History)
				})

				r.Get("/reports/export", h.Finance.Export)
			})
		})
	})

	return r
}
