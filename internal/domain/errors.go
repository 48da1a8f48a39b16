package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrOrderNotFound   = errors.New("orden no encontrada")
	ErrPaymentNotFound = errors.New("pago no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")

	// ErrTransactionFailed marca cualquier fallo inesperado del store durante
	// una secuencia atómica. Usar errors.Is contra este centinela.
	ErrTransactionFailed = errors.New("la transacción falló")
)

// IsNotFound reporta si err corresponde a cualquier variante de "no encontrado".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// TransactionError envuelve un error inesperado del store conservando la causa
// para diagnóstico. Los errores de validación y de "no encontrado" nunca se
// envuelven: pasan al caller sin cambios.
type TransactionError struct {
	Cause error
}

func (e *TransactionError) Error() string {
	return "la transacción falló: " + e.Cause.Error()
}

func (e *TransactionError) Unwrap() error { return e.Cause }

// Is permite errors.Is(err, ErrTransactionFailed).
func (e *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed
}

// WrapTransaction envuelve err en TransactionError. Los errores intencionales
// (validación o "no encontrado") y los ya envueltos se retornan tal cual.
func WrapTransaction(err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	var txErr *TransactionError
	if errors.As(err, &txErr) {
		return err
	}
	return &TransactionError{Cause: err}
}
