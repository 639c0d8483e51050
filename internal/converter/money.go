package converter

import (
	"casino_simulator/internal/model"

	"github.com/shopspring/decimal"
)

// money - сумма для ответа, всегда с двумя знаками
func money(d decimal.Decimal) string {
	return d.StringFixed(model.MoneyPlaces)
}
