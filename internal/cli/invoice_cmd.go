package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"erpctl/internal/erp"
	"erpctl/internal/invoice"

	"github.com/shopspring/decimal"
)

// cmdInvoice runs the interactive line-item editor. The engine is purely
// local; the backend is only consulted for product/stock lookups when a
// line is seeded from a barcode.
func (r *Runner) cmdInvoice(ctx context.Context) error {
	reader := bufio.NewScanner(os.Stdin)
	inv := invoice.New()
	lots := NewListState("", r.options.Limit)

	fmt.Fprintln(os.Stdout, "erpctl invoice editor (type 'help', 'exit' to quit)")

	for {
		fmt.Fprint(os.Stdout, "> ")
		if !reader.Scan() {
			return reader.Err()
		}

		fields := strings.Fields(reader.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			return nil
		case "help":
			printInvoiceHelp()
		case "add":
			id := inv.AddLine()
			fmt.Fprintf(os.Stdout, "added line %d\n", id)
		case "set":
			err = setLine(inv, fields[1:])
		case "rm":
			err = removeLine(inv, fields[1:])
		case "product":
			err = r.seedLine(ctx, inv, fields[1:])
		case "show":
			writeLines(inv.Lines())
		case "total":
			writeTotals(inv.Totals())
		case "lots":
			err = r.browseLots(ctx, lots, fields[1:])
		case "next":
			lots.Goto(lots.Page + 1)
			err = r.browseLots(ctx, lots, nil)
		case "prev":
			lots.Goto(lots.Page - 1)
			err = r.browseLots(ctx, lots, nil)
		default:
			fmt.Fprintf(os.Stdout, "unknown command %q (try 'help')\n", fields[0])
		}

		if err != nil {
			fmt.Fprintln(os.Stdout, friendlyError(err))
		}
	}
}

func printInvoiceHelp() {
	fmt.Fprintln(os.Stdout, `commands:
  add                        append a new line item
  set <id> <field> <value>   field: quantity, rate, gst
  product <id> <barcode>     seed a line from a stock lot lookup
  rm <id>                    remove a line (the last line cannot go)
  show                       print the line items
  total                      print subtotal, GST and grand total
  lots [search]              browse stock lots; 'next'/'prev' to page
  exit                       quit`)
}

func setLine(inv *invoice.Invoice, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: set <id> <quantity|rate|gst> <value>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line id %q", args[0])
	}
	value, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid value %q", args[2])
	}
	return inv.UpdateLine(id, invoice.Field(args[1]), value)
}

func removeLine(inv *invoice.Invoice, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rm <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line id %q", args[0])
	}
	return inv.RemoveLine(id)
}

// seedLine looks a barcode up in the stock lots and fills the line with the
// lot's product name, sales price and the product's GST rate.
func (r *Runner) seedLine(ctx context.Context, inv *invoice.Invoice, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: product <id> <barcode>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line id %q", args[0])
	}
	barcode := args[1]

	res, err := r.client.ListStocks(ctx, erp.ListOptions{Search: barcode, Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		return fmt.Errorf("no stock lot matches barcode %q", barcode)
	}
	lot := res.Items[0]

	gst, err := r.gstRateFor(ctx, lot.ProductID)
	if err != nil {
		return err
	}

	if err := inv.SetProduct(id, lot.ProductName,
		decimal.NewFromFloat(lot.SalesPricePerPiece), gst); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "line %d: %s @ %.2f, gst %s%%\n",
		id, lot.ProductName, lot.SalesPricePerPiece, gst.String())
	return nil
}

func (r *Runner) gstRateFor(ctx context.Context, productID int) (decimal.Decimal, error) {
	env, err := r.client.AllProductDetails(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	details, err := envelopeData(env)
	if err != nil {
		return decimal.Zero, err
	}
	for _, d := range details {
		if d.ID == productID {
			return decimal.NewFromFloat(d.GST), nil
		}
	}
	return decimal.Zero, fmt.Errorf("no product details for product %d", productID)
}

// browseLots pages through stock lots with one ListState; a fresh search
// resets the cursor and drops the cached totals.
func (r *Runner) browseLots(ctx context.Context, state *ListState, args []string) error {
	if len(args) > 0 {
		state.Search = strings.Join(args, " ")
		state.Invalidate()
		state.Goto(1)
	}

	res, err := r.client.ListStocks(ctx, state.Options())
	if err != nil {
		return err
	}
	state.Observe(res.Page)

	writeStocks(res.Items)
	writePage(res.Page)
	return nil
}
