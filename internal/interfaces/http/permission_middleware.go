package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
)

// RequirePermission devolve um middleware Fiber que consulta a matriz estática
// de permissões papel → módulo → CRUD. Deve ser usado DEPOIS de AuthMiddleware
// (precisa do papel em c.Locals).
//
// Comportamento:
//   - 401 → token sem papel (AuthMiddleware deveria tê-lo carregado).
//   - 403 → papel sem a ação sobre o módulo.
func RequirePermission(module, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "papel não encontrado no token",
			})
		}
		if !domain.Permission(role, module).Allows(action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "o papel '" + role + "' não tem acesso de " + action + " ao módulo '" + module + "'",
			})
		}
		return c.Next()
	}
}
