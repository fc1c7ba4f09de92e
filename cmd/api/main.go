package main

import (
	"fmt"
	"net/http"

	"github.com/hris-system/hris-backend-go/internal/config"
	appHTTP "github.com/hris-system/hris-backend-go/internal/handler/http"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
	"github.com/hris-system/hris-backend-go/internal/pkg/jwt"
	"github.com/hris-system/hris-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hris-system/hris-backend-go/internal/service/attendance"
	authService "github.com/hris-system/hris-backend-go/internal/service/auth"
	divisionService "github.com/hris-system/hris-backend-go/internal/service/division"
	leaveService "github.com/hris-system/hris-backend-go/internal/service/leave"
	payrollService "github.com/hris-system/hris-backend-go/internal/service/payroll"
	reportService "github.com/hris-system/hris-backend-go/internal/service/report"
	userService "github.com/hris-system/hris-backend-go/internal/service/user"
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
	divisionRepo := postgresql.NewDivisionRepository(db)
	attendanceConfigRepo := postgresql.NewAttendanceConfigRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveConfigRepo := postgresql.NewLeaveConfigRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	deductionRuleRepo := postgresql.NewDeductionRuleRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	payrollRecordRepo := postgresql.NewPayrollRecordRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, divisionRepo)
	divisionSvc := divisionService.NewDivisionService(divisionRepo, userRepo)
	attendanceConfigSvc := attendanceService.NewConfigService(attendanceConfigRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, attendanceConfigRepo)
	leaveConfigSvc := leaveService.NewConfigService(leaveConfigRepo, divisionRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveConfigRepo, userRepo)
	ruleSvc := payrollService.NewRuleService(deductionRuleRepo)
	salaryConfigSvc := payrollService.NewSalaryConfigService(salaryConfigRepo, divisionRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRecordRepo, deductionRuleRepo, salaryConfigRepo, userRepo)
	reportSvc := reportService.NewReportService(payrollRecordRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Division:   appHTTP.NewDivisionHandler(divisionSvc),
		Config:     appHTTP.NewConfigHandler(attendanceConfigSvc, salaryConfigSvc, ruleSvc, leaveConfigSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Finance:    appHTTP.NewFinanceHandler(payrollSvc, reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
