// Package invoice is the client-side line-item engine: an ordered list of
// lines whose per-line and aggregate amounts are recomputed on every edit.
// All money math is decimal; each line's amounts are rounded to two places
// when the line changes, and invoice totals sum the rounded lines, so the
// printed lines always add up to the printed total.
package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrLastLine guards the invariant that an invoice always has at least
	// one line.
	ErrLastLine = errors.New("cannot remove the last line item")
	ErrNoLine   = errors.New("no such line item")
	ErrBadField = errors.New("unknown line item field")
	ErrNegative = errors.New("value must not be negative")
)

// defaultGSTPercent is applied to freshly added lines.
var defaultGSTPercent = decimal.NewFromInt(3)

type Field string

const (
	FieldQuantity   Field = "quantity"
	FieldUnitRate   Field = "rate"
	FieldGSTPercent Field = "gst"
)

type LineItem struct {
	ID         int
	Product    string
	Quantity   decimal.Decimal
	UnitRate   decimal.Decimal
	GSTPercent decimal.Decimal

	Subtotal  decimal.Decimal
	GSTAmount decimal.Decimal
	LineTotal decimal.Decimal
}

type Totals struct {
	Subtotal   decimal.Decimal
	GSTAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// Invoice holds the ordered line list. New rows append; existing rows keep
// their position across edits.
type Invoice struct {
	lines  []LineItem
	nextID int
}

// New starts with a single zeroed line so the list is never empty.
func New() *Invoice {
	inv := &Invoice{nextID: 1}
	inv.AddLine()
	return inv
}

// AddLine appends a zeroed line with the default GST percentage and returns
// its id.
func (inv *Invoice) AddLine() int {
	line := LineItem{
		ID:         inv.nextID,
		Quantity:   decimal.Zero,
		UnitRate:   decimal.Zero,
		GSTPercent: defaultGSTPercent,
	}
	recompute(&line)
	inv.nextID++
	inv.lines = append(inv.lines, line)
	return line.ID
}

// UpdateLine replaces one numeric field on the matching line and recomputes
// that line's amounts from its own fields. No other line is touched.
func (inv *Invoice) UpdateLine(id int, field Field, value decimal.Decimal) error {
	line := inv.find(id)
	if line == nil {
		return fmt.Errorf("%w: id %d", ErrNoLine, id)
	}
	if value.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegative, field)
	}

	switch field {
	case FieldQuantity:
		line.Quantity = value
	case FieldUnitRate:
		line.UnitRate = value
	case FieldGSTPercent:
		line.GSTPercent = value
	default:
		return fmt.Errorf("%w: %q", ErrBadField, field)
	}

	recompute(line)
	return nil
}

// SetProduct fills a line from a product lookup: reference, unit rate and
// GST percentage in one step (the barcode-scan path).
func (inv *Invoice) SetProduct(id int, ref string, unitRate, gstPercent decimal.Decimal) error {
	line := inv.find(id)
	if line == nil {
		return fmt.Errorf("%w: id %d", ErrNoLine, id)
	}
	line.Product = ref
	line.UnitRate = unitRate
	line.GSTPercent = gstPercent
	recompute(line)
	return nil
}

// RemoveLine deletes the line unless it is the last one.
func (inv *Invoice) RemoveLine(id int) error {
	if len(inv.lines) <= 1 {
		return ErrLastLine
	}
	for i := range inv.lines {
		if inv.lines[i].ID == id {
			inv.lines = append(inv.lines[:i], inv.lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrNoLine, id)
}

// Lines returns a copy of the line list in order.
func (inv *Invoice) Lines() []LineItem {
	out := make([]LineItem, len(inv.lines))
	copy(out, inv.lines)
	return out
}

func (inv *Invoice) Len() int {
	return len(inv.lines)
}

// Totals folds the line amounts. Addition is order-independent, so the
// result does not depend on line order.
func (inv *Invoice) Totals() Totals {
	return ComputeTotals(inv.lines)
}

// ComputeTotals sums subtotal, GST and line total over any line list.
func ComputeTotals(lines []LineItem) Totals {
	t := Totals{
		Subtotal:   decimal.Zero,
		GSTAmount:  decimal.Zero,
		GrandTotal: decimal.Zero,
	}
	for _, line := range lines {
		t.Subtotal = t.Subtotal.Add(line.Subtotal)
		t.GSTAmount = t.GSTAmount.Add(line.GSTAmount)
		t.GrandTotal = t.GrandTotal.Add(line.LineTotal)
	}
	return t
}

func (inv *Invoice) find(id int) *LineItem {
	for i := range inv.lines {
		if inv.lines[i].ID == id {
			return &inv.lines[i]
		}
	}
	return nil
}

// recompute derives the line's amounts from quantity, rate and GST percent,
// rounding each amount half-up to two places. Deterministic: same inputs,
// same outputs.
func recompute(line *LineItem) {
	line.Subtotal = line.Quantity.Mul(line.UnitRate).Round(2)
	line.GSTAmount = line.Subtotal.Mul(line.GSTPercent).Div(decimal.NewFromInt(100)).Round(2)
	line.LineTotal = line.Subtotal.Add(line.GSTAmount)
}
