package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apppayment "github.com/jhoicas/commerce-api/internal/application/payment"
	"github.com/jhoicas/commerce-api/internal/application/dto"
	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// PaymentHandler maneja las peticiones HTTP para Payment (protegido).
type PaymentHandler struct {
	uc *apppayment.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *apppayment.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Process godoc
// @Summary      Procesar pago (crea la orden y luego el pago)
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessPaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/process [post]
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID <= 0 || in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y product_id deben ser mayores que cero"})
	}
	payment, err := h.uc.ProcessPayment(c.Context(), apppayment.ProcessPaymentInput{
		ProductID:     in.ProductID,
		UserID:        in.UserID,
		Quantity:      in.Quantity,
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
	})
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(payment))
}

// GetByID obtiene un pago por ID.
// GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	payment, err := h.uc.GetPayment(c.Context(), id)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(toPaymentResponse(payment))
}

// List lista pagos.
// GET /api/payments
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()
	payments, err := h.uc.ListPayments(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return paymentError(c, err)
	}
	out := dto.PaymentListResponse{Items: make([]dto.PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		out.Items = append(out.Items, *toPaymentResponse(p))
	}
	return c.JSON(out)
}

func paymentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TRANSACTION_FAILED", Message: err.Error()})
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		CreatedAt:     p.CreatedAt,
	}
}
