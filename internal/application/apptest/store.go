// Package apptest fornece repositórios em memória e um TxRunner com snapshot,
// usados pelos testes dos casos de uso. O TxRunner restaura o estado anterior
// quando fn retorna erro, reproduzindo o tudo-ou-nada da transação real.
package apptest

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// Store guarda todas as coleções em memória.
type Store struct {
	mu sync.Mutex

	Products       map[string]*entity.Product
	Movements      []*entity.Movement
	Sales          map[string]*entity.Sale
	SaleItems      []*entity.SaleItem
	Purchases      map[string]*entity.Purchase
	PurchaseItems  []*entity.PurchaseItem
	Receivables    map[string]*entity.Receivable
	Payables       map[string]*entity.Payable
	Accounts       map[string]*entity.BankAccount
	Entries        []*entity.BankEntry
	Slaughters     map[string]*entity.Slaughter
	SlaughterItems []*entity.SlaughterItem
	Clients        map[string]*entity.Client
	Suppliers      map[string]*entity.Supplier
}

// NewStore cria o store vazio.
func NewStore() *Store {
	return &Store{
		Products:    map[string]*entity.Product{},
		Sales:       map[string]*entity.Sale{},
		Purchases:   map[string]*entity.Purchase{},
		Receivables: map[string]*entity.Receivable{},
		Payables:    map[string]*entity.Payable{},
		Accounts:    map[string]*entity.BankAccount{},
		Slaughters:  map[string]*entity.Slaughter{},
		Clients:     map[string]*entity.Client{},
		Suppliers:   map[string]*entity.Supplier{},
	}
}

// snapshot copia o estado mutável para possível restauração.
type snapshot struct {
	products       map[string]*entity.Product
	movements      []*entity.Movement
	sales          map[string]*entity.Sale
	saleItems      []*entity.SaleItem
	purchases      map[string]*entity.Purchase
	purchaseItems  []*entity.PurchaseItem
	receivables    map[string]*entity.Receivable
	payables       map[string]*entity.Payable
	accounts       map[string]*entity.BankAccount
	entries        []*entity.BankEntry
	slaughters     map[string]*entity.Slaughter
	slaughterItems []*entity.SlaughterItem
}

func cloneMap[T any](src map[string]*T) map[string]*T {
	dst := make(map[string]*T, len(src))
	for k, v := range src {
		cp := *v
		dst[k] = &cp
	}
	return dst
}

func (s *Store) take() snapshot {
	return snapshot{
		products:       cloneMap(s.Products),
		movements:      append([]*entity.Movement(nil), s.Movements...),
		sales:          cloneMap(s.Sales),
		saleItems:      append([]*entity.SaleItem(nil), s.SaleItems...),
		purchases:      cloneMap(s.Purchases),
		purchaseItems:  append([]*entity.PurchaseItem(nil), s.PurchaseItems...),
		receivables:    cloneMap(s.Receivables),
		payables:       cloneMap(s.Payables),
		accounts:       cloneMap(s.Accounts),
		entries:        append([]*entity.BankEntry(nil), s.Entries...),
		slaughters:     cloneMap(s.Slaughters),
		slaughterItems: append([]*entity.SlaughterItem(nil), s.SlaughterItems...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.Products = snap.products
	s.Movements = snap.movements
	s.Sales = snap.sales
	s.SaleItems = snap.saleItems
	s.Purchases = snap.purchases
	s.PurchaseItems = snap.purchaseItems
	s.Receivables = snap.receivables
	s.Payables = snap.payables
	s.Accounts = snap.accounts
	s.Entries = snap.entries
	s.Slaughters = snap.slaughters
	s.SlaughterItems = snap.slaughterItems
}

// runAtomic serializa a "transação" e desfaz tudo se fn falhar.
func (s *Store) runAtomic(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.take()
	if err := fn(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// RunSale implementa sales.TxRunner.
func (s *Store) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	receivableRepo repository.ReceivableRepository,
	bankRepo repository.BankAccountRepository,
) error) error {
	return s.runAtomic(func() error {
		return fn(s.ProductRepo(), s.MovementRepo(), s.SaleRepo(), s.ReceivableRepo(), s.BankRepo())
	})
}

// RunPurchase implementa purchases.TxRunner.
func (s *Store) RunPurchase(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	purchaseRepo repository.PurchaseRepository,
	payableRepo repository.PayableRepository,
) error) error {
	return s.runAtomic(func() error {
		return fn(s.ProductRepo(), s.MovementRepo(), s.PurchaseRepo(), s.PayableRepo())
	})
}

// RunSettlement implementa finance.TxRunner.
func (s *Store) RunSettlement(_ context.Context, fn func(
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
	bankRepo repository.BankAccountRepository,
) error) error {
	return s.runAtomic(func() error {
		return fn(s.ReceivableRepo(), s.PayableRepo(), s.BankRepo())
	})
}

// RunInventory implementa inventory.TxRunner.
func (s *Store) RunInventory(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	slaughterRepo repository.SlaughterRepository,
) error) error {
	return s.runAtomic(func() error {
		return fn(s.ProductRepo(), s.MovementRepo(), s.SlaughterRepo())
	})
}

// ── Repositórios ──────────────────────────────────────────────────────────────

func (s *Store) ProductRepo() repository.ProductRepository       { return &productRepo{s} }
func (s *Store) MovementRepo() repository.MovementRepository     { return &movementRepo{s} }
func (s *Store) SaleRepo() repository.SaleRepository             { return &saleRepo{s} }
func (s *Store) PurchaseRepo() repository.PurchaseRepository     { return &purchaseRepo{s} }
func (s *Store) ReceivableRepo() repository.ReceivableRepository { return &receivableRepo{s} }
func (s *Store) PayableRepo() repository.PayableRepository       { return &payableRepo{s} }
func (s *Store) BankRepo() repository.BankAccountRepository      { return &bankRepo{s} }
func (s *Store) SlaughterRepo() repository.SlaughterRepository   { return &slaughterRepo{s} }
func (s *Store) ClientRepo() repository.ClientRepository         { return &clientRepo{s} }
func (s *Store) SupplierRepo() repository.SupplierRepository     { return &supplierRepo{s} }

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.Products[p.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *productRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.Products[p.ID] = &cp
	return nil
}

func (r *productRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	p, ok := r.s.Products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *productRepo) UpdateCost(id string, cost decimal.Decimal) error {
	p, ok := r.s.Products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.UnitCost = cost
	return nil
}

func (r *productRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.Products {
		if onlyActive && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *productRepo) Deactivate(id string) error {
	p, ok := r.s.Products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.Movements = append(r.s.Movements, &cp)
	return nil
}

func (r *movementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.Movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *movementRepo) ListByReference(referenceID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.Movements {
		if m.ReferenceID == referenceID {
			out = append(out, m)
		}
	}
	return out, nil
}

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.Sales[sale.ID] = &cp
	return nil
}

func (r *saleRepo) CreateItem(item *entity.SaleItem) error {
	cp := *item
	r.s.SaleItems = append(r.s.SaleItems, &cp)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.Sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *saleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.s.SaleItems {
		if it.SaleID == saleID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *saleRepo) UpdateFiscal(saleID string, f *entity.FiscalRecord) error {
	sale, ok := r.s.Sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *f
	sale.Fiscal = &cp
	return nil
}

func (r *saleRepo) UpdateStatus(saleID, status string) error {
	sale, ok := r.s.Sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	sale.Status = status
	return nil
}

func (r *saleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.Sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.s.Purchases[p.ID] = &cp
	return nil
}

func (r *purchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	cp := *item
	r.s.PurchaseItems = append(r.s.PurchaseItems, &cp)
	return nil
}

func (r *purchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.s.Purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *purchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range r.s.PurchaseItems {
		if it.PurchaseID == purchaseID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *purchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.s.Purchases {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type receivableRepo struct{ s *Store }

func (r *receivableRepo) Create(rec *entity.Receivable) error {
	cp := *rec
	r.s.Receivables[rec.ID] = &cp
	return nil
}

func (r *receivableRepo) GetByID(id string) (*entity.Receivable, error) {
	rec, ok := r.s.Receivables[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *receivableRepo) GetForUpdate(id string) (*entity.Receivable, error) { return r.GetByID(id) }

func (r *receivableRepo) MarkPaid(id, bankAccountID string, paidAt time.Time) error {
	rec, ok := r.s.Receivables[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Status = entity.TitleStatusPaid
	rec.PaidAt = &paidAt
	rec.BankAccountID = &bankAccountID
	return nil
}

func (r *receivableRepo) List(status string, limit, offset int) ([]*entity.Receivable, error) {
	var out []*entity.Receivable
	for _, rec := range r.s.Receivables {
		if status != "" && rec.Status != status {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

type payableRepo struct{ s *Store }

func (r *payableRepo) Create(p *entity.Payable) error {
	cp := *p
	r.s.Payables[p.ID] = &cp
	return nil
}

func (r *payableRepo) GetByID(id string) (*entity.Payable, error) {
	p, ok := r.s.Payables[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *payableRepo) GetForUpdate(id string) (*entity.Payable, error) { return r.GetByID(id) }

func (r *payableRepo) MarkPaid(id, bankAccountID string, paidAt time.Time) error {
	p, ok := r.s.Payables[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = entity.TitleStatusPaid
	p.PaidAt = &paidAt
	p.BankAccountID = &bankAccountID
	return nil
}

func (r *payableRepo) List(status string, limit, offset int) ([]*entity.Payable, error) {
	var out []*entity.Payable
	for _, p := range r.s.Payables {
		if status != "" && p.Status != status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type bankRepo struct{ s *Store }

func (r *bankRepo) Create(a *entity.BankAccount) error {
	cp := *a
	r.s.Accounts[a.ID] = &cp
	return nil
}

func (r *bankRepo) GetByID(id string) (*entity.BankAccount, error) {
	a, ok := r.s.Accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *bankRepo) GetForUpdate(id string) (*entity.BankAccount, error) { return r.GetByID(id) }

func (r *bankRepo) Update(a *entity.BankAccount) error {
	cp := *a
	r.s.Accounts[a.ID] = &cp
	return nil
}

func (r *bankRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	a, ok := r.s.Accounts[id]
	if !ok {
		return domain.ErrBankAccountNotFound
	}
	a.Balance = balance
	return nil
}

func (r *bankRepo) CreateEntry(e *entity.BankEntry) error {
	cp := *e
	r.s.Entries = append(r.s.Entries, &cp)
	return nil
}

func (r *bankRepo) ListEntries(accountID string, limit, offset int) ([]*entity.BankEntry, error) {
	var out []*entity.BankEntry
	for _, e := range r.s.Entries {
		if e.BankAccountID == accountID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *bankRepo) List(onlyActive bool) ([]*entity.BankAccount, error) {
	var out []*entity.BankAccount
	for _, a := range r.s.Accounts {
		if onlyActive && !a.Active {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *bankRepo) Deactivate(id string) error {
	a, ok := r.s.Accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Active = false
	return nil
}

type slaughterRepo struct{ s *Store }

func (r *slaughterRepo) Create(sl *entity.Slaughter) error {
	cp := *sl
	r.s.Slaughters[sl.ID] = &cp
	return nil
}

func (r *slaughterRepo) CreateItem(item *entity.SlaughterItem) error {
	cp := *item
	r.s.SlaughterItems = append(r.s.SlaughterItems, &cp)
	return nil
}

func (r *slaughterRepo) GetByID(id string) (*entity.Slaughter, error) {
	sl, ok := r.s.Slaughters[id]
	if !ok {
		return nil, nil
	}
	cp := *sl
	return &cp, nil
}

func (r *slaughterRepo) GetItems(slaughterID string) ([]*entity.SlaughterItem, error) {
	var out []*entity.SlaughterItem
	for _, it := range r.s.SlaughterItems {
		if it.SlaughterID == slaughterID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *slaughterRepo) List(limit, offset int) ([]*entity.Slaughter, error) {
	var out []*entity.Slaughter
	for _, sl := range r.s.Slaughters {
		cp := *sl
		out = append(out, &cp)
	}
	return out, nil
}

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(c *entity.Client) error {
	cp := *c
	r.s.Clients[c.ID] = &cp
	return nil
}

func (r *clientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.Clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *clientRepo) Update(c *entity.Client) error {
	cp := *c
	r.s.Clients[c.ID] = &cp
	return nil
}

func (r *clientRepo) List(onlyActive bool, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.s.Clients {
		if onlyActive && !c.Active {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *clientRepo) Deactivate(id string) error {
	c, ok := r.s.Clients[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Active = false
	return nil
}

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(sp *entity.Supplier) error {
	cp := *sp
	r.s.Suppliers[sp.ID] = &cp
	return nil
}

func (r *supplierRepo) GetByID(id string) (*entity.Supplier, error) {
	sp, ok := r.s.Suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}

func (r *supplierRepo) Update(sp *entity.Supplier) error {
	cp := *sp
	r.s.Suppliers[sp.ID] = &cp
	return nil
}

func (r *supplierRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sp := range r.s.Suppliers {
		if onlyActive && !sp.Active {
			continue
		}
		cp := *sp
		out = append(out, &cp)
	}
	return out, nil
}

func (r *supplierRepo) Deactivate(id string) error {
	sp, ok := r.s.Suppliers[id]
	if !ok {
		return domain.ErrNotFound
	}
	sp.Active = false
	return nil
}
