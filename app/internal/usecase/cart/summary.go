package cart

import (
	"github.com/shopspring/decimal"

	"example.com/cosmatic-storefront/app/internal/domain/locale"
)

// Policy carries the site settings a summary is computed against.
type Policy struct {
	Currency              string
	FreeShippingThreshold decimal.Decimal
}

type SummaryLine struct {
	ProductID   string
	Slug        string
	VariantID   string
	Title       string
	VariantName string
	Image       string
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

type Summary struct {
	Lines                    []SummaryLine
	TotalItems               int
	Subtotal                 decimal.Decimal
	Currency                 string
	FreeShippingThreshold    decimal.Decimal
	RemainingForFreeShipping decimal.Decimal
	FreeShipping             bool
}

// Summarize projects the store into display-ready lines for locale l.
func Summarize(s *Store, l locale.Locale, policy Policy) Summary {
	items := s.Items()
	summary := Summary{
		Lines:                 make([]SummaryLine, 0, len(items)),
		TotalItems:            s.TotalItems(),
		Subtotal:              s.Subtotal(),
		Currency:              policy.Currency,
		FreeShippingThreshold: policy.FreeShippingThreshold,
	}

	for _, item := range items {
		line := SummaryLine{
			ProductID: item.Product.ID,
			Slug:      item.Product.Slug,
			VariantID: item.VariantID,
			Title:     item.Product.Title(l),
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		}
		if len(item.Product.Images) > 0 {
			line.Image = item.Product.Images[0]
		}
		if item.VariantID != "" {
			if v, err := item.Product.FindVariant(item.VariantID); err == nil {
				line.VariantName = v.Name(l)
			}
		}
		summary.Lines = append(summary.Lines, line)
	}

	if policy.FreeShippingThreshold.IsPositive() {
		remaining := policy.FreeShippingThreshold.Sub(summary.Subtotal)
		if remaining.IsPositive() {
			summary.RemainingForFreeShipping = remaining
		} else {
			summary.FreeShipping = true
		}
	}
	return summary
}
