package money

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount возвращается, когда сумму не удалось разобрать
	ErrInvalidAmount = errors.New("money: invalid amount")

	// ErrOutOfRange сумма не помещается в int64 кобо
	ErrOutOfRange = errors.New("amount out of range")
)

const (
	// minorUnits количество кобо в одной найре
	minorUnits = 100
	// minorDigits количество знаков после запятой
	minorDigits = 2
	// maxNairaDigits разрядов в найрах, после которых кобо заведомо не помещаются в int64
	maxNairaDigits = 17
)

var (
	maxKobo = decimal.NewFromInt(math.MaxInt64)
	minKobo = decimal.NewFromInt(math.MinInt64)
)

// Amount денежная сумма в минимальных единицах (кобо)
type Amount int64

// Naira конструирует сумму из целого количества найр
func Naira(naira int64) Amount {
	return Amount(naira * minorUnits)
}

// Kobo конструирует сумму из минимальных единиц
func Kobo(kobo int64) Amount {
	return Amount(kobo)
}

// Parse разбирает десятичную строку ("10000", "1500.5", "1e5").
// Разряды после второго знака округляются до ближайшего кобо, половина от нуля.
func Parse(raw string) (Amount, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, raw, err)
	}
	a, err := FromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, raw)
	}
	return a, nil
}

// FromDecimal переводит сумму в найрах в кобо с проверкой диапазона int64
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsZero() {
		return 0, nil
	}

	// порядок числа проверяется до сдвига, чтобы 1e999999 не разворачивался в big.Int
	magnitude := d.NumDigits() + int(d.Exponent())
	if magnitude > maxNairaDigits {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, ErrOutOfRange)
	}
	if magnitude < -minorDigits {
		return 0, nil
	}

	kobo := d.Shift(minorDigits).Round(0)
	if kobo.GreaterThan(maxKobo) || kobo.LessThan(minKobo) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, ErrOutOfRange)
	}
	return Amount(kobo.IntPart()), nil
}

// Decimal возвращает сумму в найрах
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -minorDigits)
}

// MustParse как Parse, но паникует при ошибке; удобно в тестах и фикстурах
func MustParse(raw string) Amount {
	a, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// Add складывает суммы
func (a Amount) Add(other Amount) Amount {
	return a + other
}

// Multiply умножает сумму на целый множитель (количество дней, недель, месяцев)
func (a Amount) Multiply(times int) Amount {
	return a * Amount(times)
}

// IsZero возвращает true для нулевой суммы
func (a Amount) IsZero() bool {
	return a == 0
}

// IsNegative возвращает true для суммы меньше нуля
func (a Amount) IsNegative() bool {
	return a < 0
}

// String форматирует сумму в найрах без лишних нулей: 37000, 1500.5, 0.05
func (a Amount) String() string {
	return a.Decimal().String()
}

// MarshalJSON сериализует сумму десятичным числом в найрах
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON принимает число, строку с числом (DecimalField отдаёт строку) или null
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		if strings.TrimSpace(unquoted) == "" {
			*a = 0
			return nil
		}
		raw = unquoted
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок NUMERIC
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case int64:
		parsed, err := FromDecimal(decimal.NewFromInt(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, v)
		}
		parsed, err := FromDecimal(decimal.NewFromFloat(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidAmount, src)
	}
}

// Value реализует driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}
