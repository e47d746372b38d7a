package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/frigoerp/frigorifico-api/internal/application/auth"
	"github.com/frigoerp/frigorifico-api/internal/application/finance"
	"github.com/frigoerp/frigorifico-api/internal/application/fiscal"
	appinventory "github.com/frigoerp/frigorifico-api/internal/application/inventory"
	"github.com/frigoerp/frigorifico-api/internal/application/purchases"
	"github.com/frigoerp/frigorifico-api/internal/application/reports"
	"github.com/frigoerp/frigorifico-api/internal/application/sales"
	"github.com/frigoerp/frigorifico-api/internal/application/usecase"
	infranfe "github.com/frigoerp/frigorifico-api/internal/infrastructure/nfe"
	infrapdf "github.com/frigoerp/frigorifico-api/internal/infrastructure/pdf"
	"github.com/frigoerp/frigorifico-api/internal/infrastructure/postgres"
	httpRouter "github.com/frigoerp/frigorifico-api/internal/interfaces/http"
	"github.com/frigoerp/frigorifico-api/pkg/config"
	"github.com/frigoerp/frigorifico-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Repositórios sobre o pool (fora de transação)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	payableRepo := postgres.NewPayableRepository(pool)
	bankRepo := postgres.NewBankAccountRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	slaughterRepo := postgres.NewSlaughterRepository(pool)
	cashFlowRepo := postgres.NewCashFlowRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, unitRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	saleUC := sales.NewRegisterSaleUseCase(txRunner, clientRepo, saleRepo)
	purchaseUC := purchases.NewRegisterPurchaseUseCase(txRunner, supplierRepo, purchaseRepo)
	movementUC := appinventory.NewMovementUseCase(txRunner, movementRepo)
	slaughterUC := appinventory.NewSlaughterUseCase(txRunner, supplierRepo, slaughterRepo)
	settlementUC := finance.NewSettlementUseCase(txRunner, receivableRepo, payableRepo)
	bankUC := finance.NewBankAccountUseCase(bankRepo)
	cashFlowUC := reports.NewCashFlowUseCase(cashFlowRepo)

	// Gateway NF-e e gerador de recibos
	nfeClient := infranfe.NewClient(cfg.NFE, log)
	invoiceUC := fiscal.NewInvoiceUseCase(nfeClient, saleRepo, clientRepo, productRepo, unitRepo, companyRepo, log)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := reports.NewReceiptUseCase(receiptGen, saleRepo, clientRepo, productRepo, companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frigorífico API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		SupplierUC:   supplierUC,
		ProductUC:    productUC,
		EmployeeUC:   employeeUC,
		UnitUC:       unitUC,
		CompanyUC:    companyUC,
		SaleUC:       saleUC,
		PurchaseUC:   purchaseUC,
		MovementUC:   movementUC,
		SlaughterUC:  slaughterUC,
		SettlementUC: settlementUC,
		BankUC:       bankUC,
		InvoiceUC:    invoiceUC,
		CashFlowUC:   cashFlowUC,
		ReceiptUC:    receiptUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
