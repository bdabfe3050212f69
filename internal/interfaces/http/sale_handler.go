package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/application/sales"
	domsales "github.com/jhoicas/chopp-api/internal/domain/sales"
)

// SaleHandler registro de ventas (protegido). Acepta JSON o el formulario web.
type SaleHandler struct {
	uc *sales.RecordSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.RecordSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta
// @Description  type: loose | keg-bulk (alias feira | barril_festas). loose exige total; keg-bulk exige kegs_sold.
// @Tags         sales
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return writeError(c, err)
	}
	sale, err := h.uc.RecordSale(c.UserContext(), sales.RecordSaleInput{
		Date:      date,
		ProductID: in.ProductID,
		Type:      in.Type,
		Payload: domsales.Payload{
			Total:       dto.Decimal(in.Total),
			KegsSold:    dto.Decimal(in.KegsSold),
			StaffCost:   dto.Decimal(in.StaffCost),
			CupsCost:    dto.Decimal(in.CupsCost),
			InvoiceCost: dto.Decimal(in.InvoiceCost),
			Card:        dto.Decimal(in.Card),
			Cash:        dto.Decimal(in.Cash),
			Pix:         dto.Decimal(in.Pix),
			Notes:       in.Notes,
		},
	})
	if err != nil {
		return writeError(c, err)
	}
	return respondCreated(c, "Venda registrada", sales.ToSaleResponse(sale))
}
