package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "koperasi-backend/internal/adapter/http"
	"koperasi-backend/internal/adapter/middleware"
	"koperasi-backend/internal/adapter/repository/mysql"
	"koperasi-backend/internal/config"
	"koperasi-backend/internal/infrastructure/cache"
	"koperasi-backend/internal/infrastructure/db"
	"koperasi-backend/internal/usecase/auth"
	"koperasi-backend/internal/usecase/ledger"
	"koperasi-backend/internal/usecase/loanreq"
	memberuc "koperasi-backend/internal/usecase/member"
	savingsuc "koperasi-backend/internal/usecase/savings"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	members := mysql.NewMemberRepository(gdb)
	balances := mysql.NewBalanceRepository(gdb)
	savingsTxns := mysql.NewSavingsTransactionRepository(gdb)
	staffRepo := mysql.NewStaffRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	secret := []byte(cfg.JWTSecret)
	ledgerUC := ledger.NewUsecase(loans, installments, uow)
	intakeUC := loanreq.NewUsecase(loans, members)
	memberUC := memberuc.NewUsecase(members, uow)
	savingsUC := savingsuc.NewUsecase(balances, savingsTxns, uow)
	authUC := auth.NewUsecase(staffRepo, secret, time.Duration(cfg.JWTTTLMins)*time.Minute)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(intakeUC, ledgerUC)
	memberH := httpadp.NewMemberHandler(memberUC)
	savingsH := httpadp.NewSavingsHandler(savingsUC)
	authH := httpadp.NewAuthHandler(authUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/login", authH.Login)

	guarded := api.Group("", middleware.JWTAuth(secret))
	guarded.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSec)*time.Second))

	guarded.POST("/staff", authH.CreateStaff)

	guarded.POST("/members", memberH.CreateMember)
	guarded.GET("/members", memberH.ListMembers)
	guarded.GET("/members/:member_id", memberH.GetMember)
	guarded.PUT("/members/:member_id", memberH.UpdateMember)
	guarded.DELETE("/members/:member_id", memberH.DeleteMember)
	guarded.POST("/members/:member_id/lock", memberH.LockMember)
	guarded.POST("/members/:member_id/unlock", memberH.UnlockMember)

	guarded.GET("/balances", savingsH.ListBalances)
	guarded.POST("/savings/transactions", savingsH.RecordDeposit)
	guarded.GET("/savings/transactions", savingsH.ListTransactions)

	guarded.POST("/loans", loanH.CreateLoan)
	guarded.GET("/loans", loanH.ListLoans)
	guarded.GET("/loans/:loan_id", loanH.GetLoan)
	guarded.GET("/loans/:loan_id/installments", loanH.ListInstallments)
	guarded.GET("/loans/:loan_id/recommendation", loanH.GetRecommendation)
	guarded.POST("/loans/:loan_id/approve", loanH.ApproveLoan)
	guarded.POST("/loans/:loan_id/reject", loanH.RejectLoan)
	guarded.POST("/loans/:loan_id/payments", loanH.RecordPayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
