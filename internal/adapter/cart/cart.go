package cart

import (
	"context"

	"github.com/shopspring/decimal"
)

// Line is a priced product within a quote.
type Line struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Quote carries the authoritative totals for a checkout.
type Quote struct {
	Lines    []Line
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Provider supplies the cart being paid for.
type Provider interface {
	Quote(ctx context.Context) (*Quote, error)
}

// Fixed prices a constant set of lines with a flat tax rate.
type Fixed struct {
	lines   []Line
	taxRate decimal.Decimal
}

var (
	defaultLines = []Line{
		{ProductName: "Produit exemple", Quantity: 1, UnitPrice: decimal.RequireFromString("89.99")},
	}
	defaultTaxRate = decimal.RequireFromString("0.05")
)

// NewFixed creates a provider quoting lines at taxRate.
func NewFixed(lines []Line, taxRate decimal.Decimal) *Fixed {
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return &Fixed{lines: copied, taxRate: taxRate}
}

// NewDefault returns the single-product catalogue used by the storefront.
func NewDefault() *Fixed {
	return NewFixed(defaultLines, defaultTaxRate)
}

// Quote computes subtotal, tax and total rounded to cents.
func (f *Fixed) Quote(ctx context.Context) (*Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := make([]Line, len(f.lines))
	copy(lines, f.lines)

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(f.taxRate).Round(2)

	return &Quote{
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}
