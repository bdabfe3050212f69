package sales

import (
	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// ToSaleResponse adapta la venta registrada al DTO HTTP.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:           s.ID,
		Date:         s.Date.Format(dto.DateLayout),
		Weekday:      s.Weekday,
		ProductID:    s.ProductID,
		Type:         string(s.Type),
		Total:        s.Total,
		Profit:       s.Profit,
		KegsDepleted: s.KegsDepleted,
		LiterPriceAt: s.LiterPriceAt,
		StaffCost:    s.StaffCost,
		CupsCost:     s.CupsCost,
		InvoiceCost:  s.InvoiceCost,
		Card:         s.Card,
		Cash:         s.Cash,
		Pix:          s.Pix,
		Notes:        s.Notes,
	}
}
