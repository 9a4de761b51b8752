package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/staffhub/hrm-backend-go/internal/config"
	appHTTP "github.com/staffhub/hrm-backend-go/internal/handler/http"
	"github.com/staffhub/hrm-backend-go/internal/pkg/database"
	"github.com/staffhub/hrm-backend-go/internal/pkg/jwt"
	"github.com/staffhub/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/hrm-backend-go/internal/service/attendance"
	authService "github.com/staffhub/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub/hrm-backend-go/internal/service/dashboard"
	departmentService "github.com/staffhub/hrm-backend-go/internal/service/department"
	employeeService "github.com/staffhub/hrm-backend-go/internal/service/employee"
	leaveService "github.com/staffhub/hrm-backend-go/internal/service/leave"
	payrollService "github.com/staffhub/hrm-backend-go/internal/service/payroll"
	reportService "github.com/staffhub/hrm-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.PoolMaxConns, cfg.Database.PoolMinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	// Expired refresh tokens only get in the way of the unique hash index; sweep them daily.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
				fmt.Println("Error deleting expired refresh tokens:", err)
			}
		}
	}()

	authSvc := authService.NewAuthService(employeeRepo, refreshTokenRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, refreshTokenRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRepo, payrollRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
