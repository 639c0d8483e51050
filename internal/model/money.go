package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces Количество знаков после запятой для всех денежных сумм
const MoneyPlaces = 2

// RoundMoney округляет сумму до копеек по банковскому правилу (half-even)
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyPlaces)
}

// ValidateAmount проверяет, что сумма положительная и не содержит долей копейки
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !amount.Equal(amount.Round(MoneyPlaces)) {
		return fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidInput, MoneyPlaces)
	}
	return nil
}

// ValidateBet - то же, что ValidateAmount, но с ошибкой ErrInvalidBet
func ValidateBet(bet decimal.Decimal) error {
	if !bet.IsPositive() || !bet.Equal(bet.Round(MoneyPlaces)) {
		return fmt.Errorf("%w: %s", ErrInvalidBet, bet.String())
	}
	return nil
}
