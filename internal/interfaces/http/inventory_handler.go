package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/application/inventory"
)

// InventoryHandler entradas, bajas manuales y stock (protegido).
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de barriles
// @Tags         inventory
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "product_id, quantity, unit_cost, date"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RegisterEntry(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondCreated(c, "Entrada registrada", out)
}

// RegisterManualOut godoc
// @Summary      Registrar baja manual
// @Tags         inventory
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterManualOutRequest  true  "product_id, quantity, date, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/manual-outs [post]
func (h *InventoryHandler) RegisterManualOut(c *fiber.Ctx) error {
	var in dto.RegisterManualOutRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RegisterManualOut(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondCreated(c, "Saída registrada", out)
}

// Stock godoc
// @Summary      Stock actual por producto
// @Tags         inventory
// @Security     BasicAuth
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.CurrentStockAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
