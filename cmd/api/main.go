package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-mobile-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/oauth"
	attendanceService "github.com/cmlabs-hris/hris-mobile-go/internal/service/attendance"
	categoryService "github.com/cmlabs-hris/hris-mobile-go/internal/service/category"
	dashboardService "github.com/cmlabs-hris/hris-mobile-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-mobile-go/internal/service/employee"
	loanService "github.com/cmlabs-hris/hris-mobile-go/internal/service/loan"
	overtimeService "github.com/cmlabs-hris/hris-mobile-go/internal/service/overtime"
	shiftService "github.com/cmlabs-hris/hris-mobile-go/internal/service/shift"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
	unitService "github.com/cmlabs-hris/hris-mobile-go/internal/service/unit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	upstreamMetrics := metrics.NewUpstream()
	tokenSource := oauth.NewUpstreamTokenSource(ctx, cfg.Upstream)
	api := apiclient.New(cfg.Upstream, tokenSource, upstreamMetrics)
	fallback := statistics.NewFallback(cfg.Statistics.FallbackPerPage, upstreamMetrics)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	categorySvc := categoryService.NewCategoryService(api, fallback)
	unitSvc := unitService.NewUnitService(api, fallback)
	employeeSvc := employeeService.NewEmployeeService(api, fallback)
	attendanceSvc := attendanceService.NewAttendanceService(api, fallback)
	overtimeSvc := overtimeService.NewOvertimeService(api, fallback)
	shiftSvc := shiftService.NewShiftService(api, fallback)
	loanSvc := loanService.NewLoanService(api, fallback)
	dashboardSvc := dashboardService.NewDashboardService(employeeSvc, attendanceSvc, overtimeSvc, loanSvc)

	categoryHandler := appHTTP.NewCategoryHandler(categorySvc)
	unitHandler := appHTTP.NewUnitHandler(unitSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		upstreamMetrics,
		categoryHandler,
		unitHandler,
		employeeHandler,
		attendanceHandler,
		overtimeHandler,
		shiftHandler,
		loanHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	fmt.Printf("Server running at http://localhost%s\n", server.Addr)
	fmt.Println("Upstream:", cfg.Upstream.BaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println("Server error:", err)
		os.Exit(1)
	}
}
