package validation

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
)

// Scale is the number of fractional digits every amount and rate is kept at.
const Scale int32 = 6

// MaxIntegerDigits is the maximum number of integer digits of an amount.
const MaxIntegerDigits = 13

// RequiredColumns are the columns a bulk CSV header must contain, in reporting order.
var RequiredColumns = []string{"amount", "from", "to"}

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	amountLimit     = decimal.New(1, MaxIntegerDigits)
)

// NormalizeCurrencyCode trims and uppercases code and checks it is three letters.
func NormalizeCurrencyCode(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", apperrors.InvalidCurrency("currency code is required")
	}
	normalized := strings.ToUpper(trimmed)
	if !currencyPattern.MatchString(normalized) {
		return "", apperrors.InvalidCurrency("invalid currency code: %s", normalized)
	}
	return normalized, nil
}

// NormalizeAmount rounds amount half-up to Scale digits and checks it is positive
// and has at most MaxIntegerDigits integer digits. The checks run on the rounded
// value so that normalizing an already normalized amount never fails.
func NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, apperrors.InvalidAmount("amount must be greater than zero")
	}

	// Bound the magnitude from coefficient digits and exponent before rounding,
	// rescaling a huge exponent is expensive.
	magnitude := amount.NumDigits() + int(amount.Exponent())
	if magnitude > MaxIntegerDigits {
		return decimal.Zero, apperrors.InvalidAmount("amount can have up to %d integer digits", MaxIntegerDigits)
	}
	if magnitude < -int(Scale) {
		return decimal.Zero, apperrors.InvalidAmount("amount must be greater than zero")
	}

	rounded := amount.Round(Scale)
	if !rounded.IsPositive() {
		return decimal.Zero, apperrors.InvalidAmount("amount must be greater than zero")
	}
	if rounded.GreaterThanOrEqual(amountLimit) {
		return decimal.Zero, apperrors.InvalidAmount("amount can have up to %d integer digits", MaxIntegerDigits)
	}
	return rounded, nil
}

// ValidateHeader checks that fields contain every required column and reports the
// missing ones in RequiredColumns order.
func ValidateHeader(fields []string) error {
	present := HeaderIndex(fields)

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return apperrors.New(apperrors.CodeInvalidHeader,
			"invalid CSV header: missing columns [%s]", strings.Join(missing, ", "))
	}
	return nil
}

//go:generate mockgen -source=validation.go -destination=validation_mock_test.go -package=validation

// HeaderIndex maps each trimmed header name to its column position. A UTF-8 BOM
// on the first field is ignored; for duplicated names the first column wins.
func HeaderIndex(fields []string) map[string]int {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if i == 0 {
			f = strings.TrimPrefix(f, "\ufeff")
		}
		name := strings.TrimSpace(f)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// CurrencyPolicy decides whether a well-formed currency code may be used.
type CurrencyPolicy interface {
	Check(ctx context.Context, code string) error
}

// CurrencyCatalog reports whether a currency is known and active.
type CurrencyCatalog interface {
	IsActive(ctx context.Context, code string) (bool, error)
}

// FormatPolicy accepts every well-formed code; unknown codes are rejected later
// when the rate table has no entry for them.
type FormatPolicy struct{}

func (FormatPolicy) Check(context.Context, string) error { return nil }

// CatalogPolicy rejects codes that are absent or inactive in the catalog.
type CatalogPolicy struct {
	catalog CurrencyCatalog
}

// NewCatalogPolicy creates a policy backed by catalog.
func NewCatalogPolicy(catalog CurrencyCatalog) *CatalogPolicy {
	return &CatalogPolicy{catalog: catalog}
}

func (p *CatalogPolicy) Check(ctx context.Context, code string) error {
	active, err := p.catalog.IsActive(ctx, code)
	if err != nil {
		return err
	}
	if !active {
		return apperrors.UnsupportedCurrency(code)
	}
	return nil
}

// Normalizer applies the format rules followed by a CurrencyPolicy.
type Normalizer struct {
	policy CurrencyPolicy
}

// NewNormalizer creates a Normalizer. A nil policy behaves like FormatPolicy.
func NewNormalizer(policy CurrencyPolicy) *Normalizer {
	if policy == nil {
		policy = FormatPolicy{}
	}
	return &Normalizer{policy: policy}
}

// NormalizeCurrencyCode normalizes code and checks it against the policy.
func (n *Normalizer) NormalizeCurrencyCode(ctx context.Context, code string) (string, error) {
	normalized, err := NormalizeCurrencyCode(code)
	if err != nil {
		return "", err
	}
	if err := n.policy.Check(ctx, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// NormalizeAmount delegates to the package-level NormalizeAmount.
func (n *Normalizer) NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	return NormalizeAmount(amount)
}
