package invoice

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewStartsWithOneLine(t *testing.T) {
	inv := New()
	require.Equal(t, 1, inv.Len())

	line := inv.Lines()[0]
	assert.True(t, line.Quantity.IsZero())
	assert.True(t, line.UnitRate.IsZero())
	assert.True(t, line.GSTPercent.Equal(dec("3")))
	assert.True(t, line.Subtotal.IsZero())
	assert.True(t, line.LineTotal.IsZero())
}

func TestLineRecompute(t *testing.T) {
	tests := []struct {
		name         string
		quantity     string
		rate         string
		gst          string
		wantSubtotal string
		wantGST      string
		wantTotal    string
	}{
		{
			name:     "whole numbers",
			quantity: "2", rate: "100", gst: "18",
			wantSubtotal: "200", wantGST: "36", wantTotal: "236",
		},
		{
			name:     "fractional rate",
			quantity: "3", rate: "33.33", gst: "5",
			wantSubtotal: "99.99", wantGST: "5", wantTotal: "104.99",
		},
		{
			name:     "gst rounds half up",
			quantity: "1", rate: "10.10", gst: "12.5",
			wantSubtotal: "10.10", wantGST: "1.26", wantTotal: "11.36",
		},
		{
			name:     "zero gst",
			quantity: "4", rate: "25", gst: "0",
			wantSubtotal: "100", wantGST: "0", wantTotal: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			id := inv.Lines()[0].ID

			require.NoError(t, inv.UpdateLine(id, FieldQuantity, dec(tt.quantity)))
			require.NoError(t, inv.UpdateLine(id, FieldUnitRate, dec(tt.rate)))
			require.NoError(t, inv.UpdateLine(id, FieldGSTPercent, dec(tt.gst)))

			line := inv.Lines()[0]
			assert.True(t, line.Subtotal.Equal(dec(tt.wantSubtotal)), "subtotal %s", line.Subtotal)
			assert.True(t, line.GSTAmount.Equal(dec(tt.wantGST)), "gst %s", line.GSTAmount)
			assert.True(t, line.LineTotal.Equal(dec(tt.wantTotal)), "total %s", line.LineTotal)
		})
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	inv := New()
	id := inv.Lines()[0].ID
	require.NoError(t, inv.UpdateLine(id, FieldQuantity, dec("7")))
	require.NoError(t, inv.UpdateLine(id, FieldUnitRate, dec("19.95")))

	first := inv.Lines()[0]
	// Re-applying the same value must not move any derived amount.
	require.NoError(t, inv.UpdateLine(id, FieldUnitRate, dec("19.95")))
	second := inv.Lines()[0]

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.GSTAmount.Equal(second.GSTAmount))
	assert.True(t, first.LineTotal.Equal(second.LineTotal))
}

func TestTwoLineScenarioTotals(t *testing.T) {
	inv := New()
	first := inv.Lines()[0].ID
	require.NoError(t, inv.UpdateLine(first, FieldQuantity, dec("2")))
	require.NoError(t, inv.UpdateLine(first, FieldUnitRate, dec("100")))
	require.NoError(t, inv.UpdateLine(first, FieldGSTPercent, dec("18")))

	second := inv.AddLine()
	require.NoError(t, inv.UpdateLine(second, FieldQuantity, dec("1")))
	require.NoError(t, inv.UpdateLine(second, FieldUnitRate, dec("50")))
	require.NoError(t, inv.UpdateLine(second, FieldGSTPercent, dec("5")))

	totals := inv.Totals()
	assert.Equal(t, "250.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "38.50", totals.GSTAmount.StringFixed(2))
	assert.Equal(t, "288.50", totals.GrandTotal.StringFixed(2))
}

func TestTotalsOrderIndependent(t *testing.T) {
	lines := []LineItem{}
	for i := 0; i < 20; i++ {
		line := LineItem{
			ID:         i + 1,
			Quantity:   decimal.NewFromInt(int64(i + 1)),
			UnitRate:   dec("9.99"),
			GSTPercent: dec("18"),
		}
		line.Subtotal = line.Quantity.Mul(line.UnitRate).Round(2)
		line.GSTAmount = line.Subtotal.Mul(line.GSTPercent).Div(decimal.NewFromInt(100)).Round(2)
		line.LineTotal = line.Subtotal.Add(line.GSTAmount)
		lines = append(lines, line)
	}

	want := ComputeTotals(lines)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]LineItem, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ComputeTotals(shuffled)
		assert.True(t, want.Subtotal.Equal(got.Subtotal))
		assert.True(t, want.GSTAmount.Equal(got.GSTAmount))
		assert.True(t, want.GrandTotal.Equal(got.GrandTotal))
	}
}

func TestRemoveLastLineRejected(t *testing.T) {
	inv := New()
	id := inv.Lines()[0].ID

	err := inv.RemoveLine(id)
	require.ErrorIs(t, err, ErrLastLine)
	assert.Equal(t, 1, inv.Len())

	second := inv.AddLine()
	require.NoError(t, inv.RemoveLine(id))
	assert.Equal(t, 1, inv.Len())
	assert.Equal(t, second, inv.Lines()[0].ID)

	// Back down to one line: removal is blocked again.
	require.ErrorIs(t, inv.RemoveLine(second), ErrLastLine)
}

func TestAddLineAppendsKeepingOrder(t *testing.T) {
	inv := New()
	first := inv.Lines()[0].ID
	require.NoError(t, inv.UpdateLine(first, FieldQuantity, dec("5")))

	second := inv.AddLine()
	third := inv.AddLine()

	lines := inv.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []int{first, second, third}, []int{lines[0].ID, lines[1].ID, lines[2].ID})
	assert.True(t, lines[0].Quantity.Equal(dec("5")), "existing row must keep its state")
}

func TestUpdateLineErrors(t *testing.T) {
	inv := New()
	id := inv.Lines()[0].ID

	assert.ErrorIs(t, inv.UpdateLine(99, FieldQuantity, dec("1")), ErrNoLine)
	assert.ErrorIs(t, inv.UpdateLine(id, Field("labour"), dec("1")), ErrBadField)
	assert.ErrorIs(t, inv.UpdateLine(id, FieldUnitRate, dec("-5")), ErrNegative)
}

func TestSetProduct(t *testing.T) {
	inv := New()
	id := inv.Lines()[0].ID
	require.NoError(t, inv.UpdateLine(id, FieldQuantity, dec("2")))

	require.NoError(t, inv.SetProduct(id, "Gold Ring 22K", dec("4500"), dec("3")))

	line := inv.Lines()[0]
	assert.Equal(t, "Gold Ring 22K", line.Product)
	assert.Equal(t, "9000.00", line.Subtotal.StringFixed(2))
	assert.Equal(t, "270.00", line.GSTAmount.StringFixed(2))
	assert.Equal(t, "9270.00", line.LineTotal.StringFixed(2))

	assert.ErrorIs(t, inv.SetProduct(42, "x", dec("1"), dec("1")), ErrNoLine)
}
