package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fortitude-backend/internal/adapter/http"
	appmw "fortitude-backend/internal/adapter/middleware"
	"fortitude-backend/internal/adapter/repository/mysql"
	"fortitude-backend/internal/config"
	"fortitude-backend/internal/domain/borrower"
	"fortitude-backend/internal/domain/ledger"
	"fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/payment"
	"fortitude-backend/internal/infrastructure/cache"
	"fortitude-backend/internal/infrastructure/db"
	"fortitude-backend/internal/usecase/accounting"
	ledgerUC "fortitude-backend/internal/usecase/ledger"
	"fortitude-backend/internal/usecase/report"
	"fortitude-backend/pkg/clock"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&borrower.Borrower{},
		&loan.Loan{},
		&payment.Payment{},
		&ledger.AccountBalance{},
		&ledger.Transaction{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	uow := mysql.NewGormUoW(gdb)
	clk := clock.System{}
	ledgerSvc := ledgerUC.NewService(uow, clk)
	acctSvc := accounting.NewService(uow, ledgerSvc, clk)
	reportSvc := report.NewService(uow, clk)

	h := httpadp.NewHandler()
	bh := httpadp.NewBorrowerHandler(acctSvc)
	lh := httpadp.NewLoanHandler(acctSvc)
	ph := httpadp.NewPaymentHandler(acctSvc)
	balh := httpadp.NewBalanceHandler(ledgerSvc)
	rh := httpadp.NewReportHandler(reportSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/borrowers", bh.CreateBorrower)
	e.GET("/borrowers", bh.ListBorrowers)
	e.GET("/borrowers/:borrower_id", bh.GetBorrower)
	e.PUT("/borrowers/:borrower_id", bh.UpdateBorrower)
	e.DELETE("/borrowers/:borrower_id", bh.DeleteBorrower)

	e.POST("/loans", lh.CreateLoan, idemp)
	e.GET("/loans", lh.ListLoans)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.PUT("/loans/:loan_id", lh.UpdateLoan, idemp)
	e.DELETE("/loans/:loan_id", lh.DeleteLoan)
	e.POST("/loans/:loan_id/default", lh.MarkDefaulted)

	e.POST("/payments", ph.CreatePayment, idemp)
	e.GET("/payments", ph.ListPayments)
	e.GET("/payments/:payment_id", ph.GetPayment)

	e.GET("/balance", balh.GetBalance)
	e.PUT("/balance", balh.SetBalance)
	e.GET("/balance/transactions", balh.ListTransactions)
	e.GET("/balance/reconcile", balh.Reconcile)

	e.GET("/reports", rh.GetReports)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
