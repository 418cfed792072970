package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"erpctl/internal/erp"
	"erpctl/internal/invoice"
	"erpctl/internal/validate"
)

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func writePage(p erp.Page) {
	fmt.Fprintf(os.Stdout, "page %d of %d (%d records, %d per page)\n",
		p.CurrentPage, p.TotalPages, p.TotalCount, p.Limit)
}

func writeVendors(items []erp.Vendor) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tGST NO\tPHONE\tACTIVE")
	for _, v := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", v.ID, v.Name, v.GSTNo, v.PhoneNumber, v.IsActive)
	}
	w.Flush()
}

func writeHSNs(items []erp.HSN) {
	w := newTable()
	fmt.Fprintln(w, "ID\tHSN NO\tGST RATE\tACTIVE")
	for _, h := range items {
		fmt.Fprintf(w, "%d\t%s\t%.2f%%\t%t\n", h.ID, h.HSNNo, h.GSTRate, h.IsActive)
	}
	w.Flush()
}

func writeCategories(items []erp.Category) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tPREFIX\tHSN NO\tACTIVE")
	for _, c := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", c.ID, c.CategoryName, c.Prefix, c.HSNNo, c.IsActive)
	}
	w.Flush()
}

func writeCustomers(items []erp.Customer) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tMOBILE\tCITY\tGST NO\tACTIVE")
	for _, c := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n", c.ID, c.ClientName, c.MobileNo, c.City, c.GSTNo, c.IsActive)
	}
	w.Flush()
}

func writeProducts(items []erp.Product) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCODE\tCATEGORY\tMIN STOCK\tACTIVE")
	for _, p := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%t\n", p.ID, p.Name, p.ProductCode, p.CategoryName, p.MinStock, p.IsActive)
	}
	w.Flush()
}

func writeStocks(items []erp.ProductStock) {
	w := newTable()
	fmt.Fprintln(w, "ID\tBARCODE\tPRODUCT\tQTY\tSALES PRICE\tTOTAL")
	for _, s := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
			s.ID, s.Barcode, s.ProductName, s.Quantity, s.SalesPricePerPiece, s.TotalSalesPrice)
	}
	w.Flush()
}

func writeLines(lines []invoice.LineItem) {
	w := newTable()
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tRATE\tGST%\tSUBTOTAL\tGST\tTOTAL")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.Product,
			l.Quantity.String(), l.UnitRate.String(), l.GSTPercent.String(),
			l.Subtotal.StringFixed(2), l.GSTAmount.StringFixed(2), l.LineTotal.StringFixed(2))
	}
	w.Flush()
}

func writeTotals(t invoice.Totals) {
	fmt.Fprintf(os.Stdout, "subtotal: %s\ngst: %s\ngrand total: %s\n",
		t.Subtotal.StringFixed(2), t.GSTAmount.StringFixed(2), t.GrandTotal.StringFixed(2))
}

// friendlyError maps the error taxonomy to what a user should read.
func friendlyError(err error) string {
	var apiErr *erp.APIError
	var fieldErrs validate.FieldErrors

	switch {
	case errors.Is(err, erp.ErrAuthExpired):
		return "Session expired. Please login again with: erpctl login <email> <password>"
	case errors.Is(err, erp.ErrTimeout):
		return "Request timed out. The backend did not answer in time; try again."
	case errors.Is(err, erp.ErrFormat):
		return fmt.Sprintf("The backend returned an unexpected response: %v", err)
	case errors.As(err, &fieldErrs):
		return fmt.Sprintf("Validation failed:\n  %s", fieldErrs.Error())
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return err.Error()
	}
}
