package cart

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	domcart "example.com/cosmatic-storefront/app/internal/domain/cart"
	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
)

// snapshotRecord mirrors domcart.LineItem with pointers so that missing
// fields can be told apart from zero values.
type snapshotRecord struct {
	Product   *domproduct.Product `json:"product"`
	VariantID *string             `json:"variantId,omitempty"`
	Quantity  *int                `json:"quantity"`
}

// number writes a decimal as a bare JSON number rather than a quoted string.
type number decimal.Decimal

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

func numberPtr(d *decimal.Decimal) *number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}

// The outer price fields shadow the embedded decimal ones when encoding.
type snapshotVariant struct {
	domproduct.Variant
	Price *number `json:"price,omitempty"`
}

type snapshotProduct struct {
	domproduct.Product
	Price          number            `json:"price"`
	CompareAtPrice *number           `json:"compareAtPrice,omitempty"`
	Variants       []snapshotVariant `json:"variants,omitempty"`
}

type snapshotLine struct {
	Product   snapshotProduct `json:"product"`
	VariantID string          `json:"variantId,omitempty"`
	Quantity  int             `json:"quantity"`
}

func toSnapshotLine(item domcart.LineItem) snapshotLine {
	p := snapshotProduct{
		Product:        item.Product,
		Price:          number(item.Product.Price),
		CompareAtPrice: numberPtr(item.Product.CompareAtPrice),
	}
	for _, v := range item.Product.Variants {
		p.Variants = append(p.Variants, snapshotVariant{Variant: v, Price: numberPtr(v.Price)})
	}
	return snapshotLine{Product: p, VariantID: item.VariantID, Quantity: item.Quantity}
}

func encodeSnapshot(items []domcart.LineItem) (string, error) {
	lines := make([]snapshotLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, toSnapshotLine(item))
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return "", errors.Wrap(err, "marshal cart snapshot")
	}
	return string(raw), nil
}

func decodeSnapshot(raw string) ([]domcart.LineItem, error) {
	var records []snapshotRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, errors.Wrapf(domcart.ErrInvalidSnapshot, "unmarshal: %v", err)
	}
	if records == nil {
		return nil, errors.Wrap(domcart.ErrInvalidSnapshot, "snapshot is not an array")
	}

	items := make([]domcart.LineItem, 0, len(records))
	seen := make(map[domcart.Key]struct{}, len(records))
	for i, rec := range records {
		if rec.Product == nil || rec.Product.ID == "" {
			return nil, errors.Wrapf(domcart.ErrInvalidSnapshot, "record %d: missing product", i)
		}
		if rec.Quantity == nil || *rec.Quantity < 1 {
			return nil, errors.Wrapf(domcart.ErrInvalidSnapshot, "record %d: invalid quantity", i)
		}
		item := domcart.LineItem{Product: *rec.Product, Quantity: *rec.Quantity}
		if rec.VariantID != nil {
			item.VariantID = *rec.VariantID
		}
		if _, dup := seen[item.Key()]; dup {
			return nil, errors.Wrapf(domcart.ErrInvalidSnapshot, "record %d: duplicate line", i)
		}
		seen[item.Key()] = struct{}{}
		items = append(items, item)
	}
	return items, nil
}
