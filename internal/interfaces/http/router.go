package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/auth"
	"github.com/frigoerp/frigorifico-api/internal/application/finance"
	"github.com/frigoerp/frigorifico-api/internal/application/fiscal"
	appinventory "github.com/frigoerp/frigorifico-api/internal/application/inventory"
	"github.com/frigoerp/frigorifico-api/internal/application/purchases"
	"github.com/frigoerp/frigorifico-api/internal/application/reports"
	"github.com/frigoerp/frigorifico-api/internal/application/sales"
	"github.com/frigoerp/frigorifico-api/internal/application/usecase"
	"github.com/frigoerp/frigorifico-api/internal/domain"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ClientUC     *usecase.ClientUseCase
	SupplierUC   *usecase.SupplierUseCase
	ProductUC    *usecase.ProductUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	UnitUC       *usecase.UnitUseCase
	CompanyUC    *usecase.CompanyUseCase
	SaleUC       *sales.RegisterSaleUseCase
	PurchaseUC   *purchases.RegisterPurchaseUseCase
	MovementUC   *appinventory.MovementUseCase
	SlaughterUC  *appinventory.SlaughterUseCase
	SettlementUC *finance.SettlementUseCase
	BankUC       *finance.BankAccountUseCase
	InvoiceUC    *fiscal.InvoiceUseCase
	CashFlowUC   *reports.CashFlowUseCase
	ReceiptUC    *reports.ReceiptUseCase
	JWTSecret    string
}

// Router registra as rotas da API. Login é público; todo o resto exige
// Bearer Token e a permissão do papel sobre o módulo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuários: gestão restrita a admin (create em cadastros só admin tem delete)
	users := protected.Group("/users", RequireRole(domain.RoleAdmin))
	users.Get("/", authHandler.ListUsers)
	users.Delete("/:id", authHandler.DeactivateUser)
	protected.Post("/auth/register", RequireRole(domain.RoleAdmin), authHandler.Register)

	// Cadastros
	reg := func(action string) fiber.Handler { return RequirePermission(domain.ModuleRegistries, action) }

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", reg(domain.ActionCreate), clientHandler.Create)
	clients.Get("/", reg(domain.ActionRead), clientHandler.List)
	clients.Get("/:id", reg(domain.ActionRead), clientHandler.Get)
	clients.Put("/:id", reg(domain.ActionUpdate), clientHandler.Update)
	clients.Delete("/:id", reg(domain.ActionDelete), clientHandler.Deactivate)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", reg(domain.ActionCreate), supplierHandler.Create)
	suppliers.Get("/", reg(domain.ActionRead), supplierHandler.List)
	suppliers.Get("/:id", reg(domain.ActionRead), supplierHandler.Get)
	suppliers.Put("/:id", reg(domain.ActionUpdate), supplierHandler.Update)
	suppliers.Delete("/:id", reg(domain.ActionDelete), supplierHandler.Deactivate)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", reg(domain.ActionCreate), productHandler.Create)
	products.Get("/", reg(domain.ActionRead), productHandler.List)
	products.Get("/:id", reg(domain.ActionRead), productHandler.Get)
	products.Put("/:id", reg(domain.ActionUpdate), productHandler.Update)
	products.Delete("/:id", reg(domain.ActionDelete), productHandler.Deactivate)

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", reg(domain.ActionCreate), employeeHandler.Create)
	employees.Get("/", reg(domain.ActionRead), employeeHandler.List)
	employees.Get("/:id", reg(domain.ActionRead), employeeHandler.Get)
	employees.Put("/:id", reg(domain.ActionUpdate), employeeHandler.Update)
	employees.Delete("/:id", reg(domain.ActionDelete), employeeHandler.Deactivate)

	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", reg(domain.ActionCreate), unitHandler.Create)
	units.Get("/", reg(domain.ActionRead), unitHandler.List)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", reg(domain.ActionRead), companyHandler.Get)
	protected.Put("/company", reg(domain.ActionUpdate), companyHandler.Upsert)

	// Vendas
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", RequirePermission(domain.ModuleSales, domain.ActionCreate), saleHandler.Register)
	salesGroup.Get("/", RequirePermission(domain.ModuleSales, domain.ActionRead), saleHandler.List)
	salesGroup.Get("/:id", RequirePermission(domain.ModuleSales, domain.ActionRead), saleHandler.Get)
	salesGroup.Get("/:id/receipt", RequirePermission(domain.ModuleSales, domain.ActionRead), saleHandler.Receipt)

	// Fiscal: NF-e da venda
	fiscalHandler := NewFiscalHandler(deps.InvoiceUC)
	salesGroup.Post("/:id/invoice", RequirePermission(domain.ModuleFiscal, domain.ActionCreate), fiscalHandler.Emit)
	salesGroup.Get("/:id/invoice", RequirePermission(domain.ModuleFiscal, domain.ActionRead), fiscalHandler.Consult)
	salesGroup.Delete("/:id/invoice", RequirePermission(domain.ModuleFiscal, domain.ActionUpdate), fiscalHandler.Cancel)

	// Compras
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup := protected.Group("/purchases")
	purchasesGroup.Post("/", RequirePermission(domain.ModulePurchases, domain.ActionCreate), purchaseHandler.Register)
	purchasesGroup.Get("/", RequirePermission(domain.ModulePurchases, domain.ActionRead), purchaseHandler.List)
	purchasesGroup.Get("/:id", RequirePermission(domain.ModulePurchases, domain.ActionRead), purchaseHandler.Get)

	// Estoque
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.SlaughterUC)
	inv := protected.Group("/inventory")
	inv.Post("/movements", RequirePermission(domain.ModuleInventory, domain.ActionCreate), inventoryHandler.RegisterMovement)
	inv.Get("/movements/:productId", RequirePermission(domain.ModuleInventory, domain.ActionRead), inventoryHandler.ListMovements)
	inv.Post("/slaughters", RequirePermission(domain.ModuleInventory, domain.ActionCreate), inventoryHandler.RegisterSlaughter)
	inv.Get("/slaughters", RequirePermission(domain.ModuleInventory, domain.ActionRead), inventoryHandler.ListSlaughters)
	inv.Get("/slaughters/:id", RequirePermission(domain.ModuleInventory, domain.ActionRead), inventoryHandler.GetSlaughter)

	// Financeiro
	financeHandler := NewFinanceHandler(deps.SettlementUC, deps.BankUC)
	fin := protected.Group("/finance")
	fin.Get("/receivables", RequirePermission(domain.ModuleFinance, domain.ActionRead), financeHandler.ListReceivables)
	fin.Post("/receivables/:id/settle", RequirePermission(domain.ModuleFinance, domain.ActionUpdate), financeHandler.SettleReceivable)
	fin.Get("/payables", RequirePermission(domain.ModuleFinance, domain.ActionRead), financeHandler.ListPayables)
	fin.Post("/payables/:id/settle", RequirePermission(domain.ModuleFinance, domain.ActionUpdate), financeHandler.SettlePayable)
	fin.Post("/accounts", RequirePermission(domain.ModuleFinance, domain.ActionCreate), financeHandler.CreateBankAccount)
	fin.Get("/accounts", RequirePermission(domain.ModuleFinance, domain.ActionRead), financeHandler.ListBankAccounts)
	fin.Get("/accounts/:id", RequirePermission(domain.ModuleFinance, domain.ActionRead), financeHandler.GetBankAccount)
	fin.Get("/accounts/:id/statement", RequirePermission(domain.ModuleFinance, domain.ActionRead), financeHandler.Statement)
	fin.Delete("/accounts/:id", RequirePermission(domain.ModuleFinance, domain.ActionDelete), financeHandler.DeactivateBankAccount)

	// Relatórios
	reportHandler := NewReportHandler(deps.CashFlowUC)
	protected.Get("/reports/cashflow", RequirePermission(domain.ModuleReports, domain.ActionRead), reportHandler.CashFlow)
}
