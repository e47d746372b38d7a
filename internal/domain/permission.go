package domain

// Módulos funcionais do sistema, usados na tabela de permissões e no middleware HTTP.
const (
	ModuleRegistries = "cadastros"
	ModuleSales      = "vendas"
	ModulePurchases  = "compras"
	ModuleInventory  = "estoque"
	ModuleFinance    = "financeiro"
	ModuleFiscal     = "fiscal"
	ModuleReports    = "relatorios"
)

// Papéis de usuário.
const (
	RoleAdmin      = "admin"
	RoleFinanceiro = "financeiro"
	RoleVendas     = "vendas"
	RoleProducao   = "producao"
)

// CRUD flags de acesso de um papel a um módulo.
type CRUD struct {
	Create bool
	Read   bool
	Update bool
	Delete bool
}

// Ações usadas pelo middleware RequirePermission.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Allows devolve se a ação está liberada.
func (c CRUD) Allows(action string) bool {
	switch action {
	case ActionCreate:
		return c.Create
	case ActionRead:
		return c.Read
	case ActionUpdate:
		return c.Update
	case ActionDelete:
		return c.Delete
	}
	return false
}

var fullAccess = CRUD{Create: true, Read: true, Update: true, Delete: true}
var readOnly = CRUD{Read: true}

// permissions é a matriz estática papel → módulo → flags CRUD.
// Não há herança nem ordem de avaliação: consulta direta.
var permissions = map[string]map[string]CRUD{
	RoleAdmin: {
		ModuleRegistries: fullAccess,
		ModuleSales:      fullAccess,
		ModulePurchases:  fullAccess,
		ModuleInventory:  fullAccess,
		ModuleFinance:    fullAccess,
		ModuleFiscal:     fullAccess,
		ModuleReports:    fullAccess,
	},
	RoleFinanceiro: {
		ModuleRegistries: readOnly,
		ModuleSales:      readOnly,
		ModulePurchases:  readOnly,
		ModuleFinance:    fullAccess,
		ModuleFiscal:     CRUD{Create: true, Read: true, Update: true},
		ModuleReports:    readOnly,
	},
	RoleVendas: {
		ModuleRegistries: CRUD{Create: true, Read: true, Update: true},
		ModuleSales:      CRUD{Create: true, Read: true, Update: true},
		ModuleInventory:  readOnly,
		ModuleFiscal:     CRUD{Create: true, Read: true},
		ModuleReports:    readOnly,
	},
	RoleProducao: {
		ModuleRegistries: readOnly,
		ModulePurchases:  CRUD{Create: true, Read: true, Update: true},
		ModuleInventory:  fullAccess,
		ModuleReports:    readOnly,
	},
}

// Permission devolve as flags CRUD de um papel sobre um módulo.
// Papel ou módulo desconhecido resulta em acesso nenhum.
func Permission(role, module string) CRUD {
	byModule, ok := permissions[role]
	if !ok {
		return CRUD{}
	}
	return byModule[module]
}
