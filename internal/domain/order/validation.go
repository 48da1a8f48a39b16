// Package order contiene las reglas de negocio puras para la creación de
// órdenes. Las funciones no hacen I/O: reciben agregados ya leídos dentro del
// alcance transaccional del caller.
package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// ValidateQuantity falla con ErrInvalidInput cuando quantity <= 0.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateUserExists falla con ErrUserNotFound cuando la búsqueda no retornó nada.
func ValidateUserExists(user *entity.User) error {
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

// ValidateProductExists falla con ErrProductNotFound cuando la búsqueda no retornó nada.
func ValidateProductExists(product *entity.Product) error {
	if product == nil {
		return domain.ErrProductNotFound
	}
	return nil
}

// ValidateTotalPrice falla con ErrInvalidInput cuando el total computado es <= 0.
// Protege contra precios de producto cero o negativos que producirían una
// orden degenerada.
func ValidateTotalPrice(totalPrice decimal.Decimal) error {
	if totalPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: el precio total debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return nil
}
