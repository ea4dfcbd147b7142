package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	upstreamMetrics *metrics.Upstream,
	categoryHandler CategoryHandler,
	unitHandler UnitHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	overtimeHandler OvertimeHandler,
	shiftHandler ShiftHandler,
	loanHandler LoanHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-mobile"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", upstreamMetrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.ForwardCredentials)

			r.Route("/inventory", func(r chi.Router) {
				r.Route("/categories", func(r chi.Router) {
					r.Get("/", categoryHandler.List)
					r.Post("/", categoryHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", categoryHandler.GetByID)
						r.Put("/", categoryHandler.Update)
						r.Delete("/", categoryHandler.Delete)
						r.Patch("/toggle-status", categoryHandler.ToggleStatus)
					})
				})

				r.Route("/units", func(r chi.Router) {
					r.Get("/", unitHandler.List)
					r.Post("/", unitHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", unitHandler.GetByID)
						r.Put("/", unitHandler.Update)
						r.Delete("/", unitHandler.Delete)
						r.Patch("/toggle-status", unitHandler.ToggleStatus)
					})
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/overview", dashboardHandler.GetOverview)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetByID)
						r.Put("/", employeeHandler.Update)
						r.Delete("/", employeeHandler.Delete)
						r.Patch("/toggle-status", employeeHandler.ToggleStatus)
					})
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.List)
					r.Post("/", attendanceHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", attendanceHandler.GetByID)
						r.Put("/", attendanceHandler.Update)
						r.Delete("/", attendanceHandler.Delete)
					})
				})

				r.Route("/overtime", func(r chi.Router) {
					r.Get("/", overtimeHandler.List)
					r.Post("/", overtimeHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", overtimeHandler.GetByID)
						r.Put("/", overtimeHandler.Update)
						r.Delete("/", overtimeHandler.Delete)

						// Manager or owner only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireReviewer)
							r.Post("/approve", overtimeHandler.Approve)
							r.Post("/reject", overtimeHandler.Reject)
							r.Post("/mark-paid", overtimeHandler.MarkPaid)
						})
					})
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.List)
					r.Post("/", shiftHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", shiftHandler.GetByID)
						r.Put("/", shiftHandler.Update)
						r.Delete("/", shiftHandler.Delete)
						r.Patch("/toggle-status", shiftHandler.ToggleStatus)

						r.Get("/assignments", shiftHandler.ListAssignments)
						r.Post("/assign", shiftHandler.AssignEmployee)
						r.Post("/assignments/{assignmentID}/end", shiftHandler.EndAssignment)
					})
				})

				r.Route("/loans", func(r chi.Router) {
					r.Get("/", loanHandler.List)
					r.Post("/", loanHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", loanHandler.GetByID)
						r.Put("/", loanHandler.Update)
						r.Delete("/", loanHandler.Delete)

						// Manager or owner only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireReviewer)
							r.Post("/approve", loanHandler.Approve)
							r.Post("/reject", loanHandler.Reject)
							r.Post("/mark-paid", loanHandler.MarkPaid)
						})
					})
				})
			})
		})
	})
	return r
}
