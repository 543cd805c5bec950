package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// MaxAmountDigits соответствует колонке NUMERIC(40, 0).
const MaxAmountDigits = 40

// Amount - неотрицательная целая сумма задания в минимальных единицах токена.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, apperror.Validation("Amount cannot be negative")
	}
	if !value.Equal(value.Truncate(0)) {
		return Amount{}, apperror.Validation("Amount must be a whole number")
	}
	if len(value.Truncate(0).Abs().String()) > MaxAmountDigits {
		return Amount{}, apperror.Validation("Amount is too large")
	}
	return Amount{value: value.Truncate(0)}, nil
}

func ParseAmount(raw string) (Amount, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, apperror.Validation("Amount must be a number")
	}
	return NewAmount(value)
}

func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

func (a Amount) String() string {
	return a.value.String()
}

// MarshalJSON пишет сумму числом без кавычек. Сумма целая, поэтому запись
// берётся из десятичной строки и не теряет разрядов.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON принимает и число, и строку с числом.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewAmount(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
