package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"erpctl/internal/erp"
	"erpctl/internal/validate"

	"github.com/samber/lo"
)

func splitAction(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("an action is required (list, get, create, update, delete)")
	}
	return args[0], args[1:], nil
}

func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("a record id is required")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", args[0])
	}
	return id, nil
}

// payload reads the -f JSON document into v and runs the local field checks.
// Validation failures stop here; nothing reaches the network.
func (r *Runner) payload(v any) error {
	if r.options.File == "" {
		return fmt.Errorf("a payload is required: pass -f file.json or -f - for stdin")
	}

	var data []byte
	var err error
	if r.options.File == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(r.options.File)
	}
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing payload: %w", err)
	}
	return validate.Struct(v)
}

// envelopeRecord unwraps a single-record envelope, turning an unsuccessful
// envelope into an error with the server's message.
func envelopeRecord[T any](env *erp.Envelope[erp.Record[T]]) (T, error) {
	if !env.Success {
		var zero T
		return zero, envelopeFailure(env.Message, env.Error)
	}
	return env.Data.Data, nil
}

func envelopeData[T any](env *erp.Envelope[T]) (T, error) {
	if !env.Success {
		var zero T
		return zero, envelopeFailure(env.Message, env.Error)
	}
	return env.Data, nil
}

func envelopeFailure(message, errText string) error {
	if message != "" {
		return fmt.Errorf("request failed: %s", message)
	}
	if errText != "" {
		return fmt.Errorf("request failed: %s", errText)
	}
	return fmt.Errorf("request failed")
}

// runList drives one list fetch through a ListState and prints the page.
func runList[T any](r *Runner, fetch func(erp.ListOptions) (*erp.ListResult[T], error), write func([]T)) error {
	state := NewListState(r.options.Search, r.options.Limit)
	state.Goto(r.options.Page)

	res, err := fetch(state.Options())
	if err != nil {
		return err
	}
	state.Observe(res.Page)

	if r.options.JSON {
		return writeJSON(map[string]any{"items": res.Items, "pagination": res.Page})
	}
	write(res.Items)
	writePage(res.Page)
	return nil
}

func printRecord[T any](r *Runner, record T) error {
	if r.options.JSON {
		return writeJSON(record)
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func (r *Runner) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: erpctl login <email> <password>")
	}
	user, err := r.ctrl.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (r *Runner) cmdLogout(ctx context.Context) error {
	r.ctrl.Logout(ctx)
	fmt.Fprintln(os.Stdout, "logged out")
	return nil
}

func (r *Runner) cmdProfile(ctx context.Context) error {
	env, err := r.client.Profile(ctx)
	if err != nil {
		return err
	}
	admin, err := envelopeData(env)
	if err != nil {
		return err
	}
	return printRecord(r, admin)
}

func (r *Runner) cmdDashboard(ctx context.Context, args []string) error {
	which := "stats"
	if len(args) > 0 {
		which = args[0]
	}

	switch which {
	case "stats":
		env, err := r.client.DashboardStats(ctx)
		if err != nil {
			return err
		}
		stats, err := envelopeData(env)
		if err != nil {
			return err
		}
		return printRecord(r, stats)
	case "master":
		env, err := r.client.MasterDashboard(ctx)
		if err != nil {
			return err
		}
		totals, err := envelopeData(env)
		if err != nil {
			return err
		}
		return printRecord(r, totals)
	default:
		return fmt.Errorf("unknown dashboard view %q (stats, master)", which)
	}
}

func (r *Runner) cmdVendors(ctx context.Context, args []string) error {
	action, rest, err := splitAction(args)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		return runList(r, func(opts erp.ListOptions) (*erp.ListResult[erp.Vendor], error) {
			return r.client.ListVendors(ctx, opts)
		}, writeVendors)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GetVendor(ctx, id)
		if err != nil {
			return err
		}
		vendor, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, vendor)
	case "create":
		var p erp.VendorPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.CreateVendor(ctx, p)
		if err != nil {
			return err
		}
		vendor, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created vendor %d\n", vendor.ID)
		return printRecord(r, vendor)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		var p erp.VendorPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.UpdateVendor(ctx, id, p)
		if err != nil {
			return err
		}
		vendor, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, vendor)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteVendor(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "deleted vendor %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown vendors action %q", action)
	}
}

func (r *Runner) cmdCategories(ctx context.Context, args []string) error {
	action, rest, err := splitAction(args)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		return runList(r, func(opts erp.ListOptions) (*erp.ListResult[erp.Category], error) {
			opts.SortBy = r.options.SortBy
			opts.Order = r.options.Order
			return r.client.ListCategories(ctx, opts)
		}, writeCategories)
	case "all":
		env, err := r.client.AllCategories(ctx)
		if err != nil {
			return err
		}
		items, err := envelopeData(env)
		if err != nil {
			return err
		}
		return printRecord(r, items)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GetCategory(ctx, id)
		if err != nil {
			return err
		}
		category, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, category)
	case "create":
		var p erp.CategoryPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.CreateCategory(ctx, p)
		if err != nil {
			return err
		}
		category, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created category %d\n", category.ID)
		return printRecord(r, category)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		var p erp.CategoryPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.UpdateCategory(ctx, id, p)
		if err != nil {
			return err
		}
		category, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, category)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteCategory(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "deleted category %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown categories action %q", action)
	}
}

func (r *Runner) cmdHSN(ctx context.Context, args []string) error {
	action, rest, err := splitAction(args)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		var gstRate *float64
		if r.options.GSTRate >= 0 {
			gstRate = lo.ToPtr(r.options.GSTRate)
		}
		return runList(r, func(opts erp.ListOptions) (*erp.ListResult[erp.HSN], error) {
			return r.client.ListHSNs(ctx, opts, gstRate)
		}, writeHSNs)
	case "numbers":
		env, err := r.client.HSNNumbers(ctx)
		if err != nil {
			return err
		}
		items, err := envelopeData(env)
		if err != nil {
			return err
		}
		return printRecord(r, items)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GetHSN(ctx, id)
		if err != nil {
			return err
		}
		hsn, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, hsn)
	case "code":
		if len(rest) == 0 {
			return fmt.Errorf("an HSN code is required")
		}
		env, err := r.client.GetHSNByCode(ctx, rest[0])
		if err != nil {
			return err
		}
		hsn, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, hsn)
	case "create":
		var p erp.HSNPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.CreateHSN(ctx, p)
		if err != nil {
			return err
		}
		hsn, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created hsn %d\n", hsn.ID)
		return printRecord(r, hsn)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		var p erp.HSNPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.UpdateHSN(ctx, id, p)
		if err != nil {
			return err
		}
		hsn, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, hsn)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteHSN(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "deleted hsn %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown hsn action %q", action)
	}
}

func (r *Runner) cmdCustomers(ctx context.Context, args []string) error {
	action, rest, err := splitAction(args)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		return runList(r, func(opts erp.ListOptions) (*erp.ListResult[erp.Customer], error) {
			return r.client.ListCustomers(ctx, opts)
		}, writeCustomers)
	case "all":
		env, err := r.client.AllCustomers(ctx)
		if err != nil {
			return err
		}
		items, err := envelopeData(env)
		if err != nil {
			return err
		}
		return printRecord(r, items)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GetCustomer(ctx, id)
		if err != nil {
			return err
		}
		customer, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, customer)
	case "create":
		var p erp.CustomerPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.CreateCustomer(ctx, p)
		if err != nil {
			return err
		}
		customer, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created customer %d\n", customer.ID)
		return printRecord(r, customer)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		var p erp.CustomerPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.UpdateCustomer(ctx, id, p)
		if err != nil {
			return err
		}
		customer, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, customer)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteCustomer(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "deleted customer %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown customers action %q", action)
	}
}

func (r *Runner) cmdProducts(ctx context.Context, args []string) error {
	action, rest, err := splitAction(args)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		filter := erp.ProductFilter{}
		if r.options.Category > 0 {
			filter.CategoryID = lo.ToPtr(r.options.Category)
		}
		if r.options.Active != "" {
			active, err := strconv.ParseBool(r.options.Active)
			if err != nil {
				return fmt.Errorf("invalid -active value %q", r.options.Active)
			}
			filter.IsActive = lo.ToPtr(active)
		}
		return runList(r, func(opts erp.ListOptions) (*erp.ListResult[erp.Product], error) {
			return r.client.ListProducts(ctx, opts, filter)
		}, writeProducts)
	case "all-details":
		env, err := r.client.AllProductDetails(ctx)
		if err != nil {
			return err
		}
		items, err := envelopeData(env)
		if err != nil {
			return err
		}
		return printRecord(r, items)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		product, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, product)
	case "create":
		var p erp.ProductPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.CreateProduct(ctx, p)
		if err != nil {
			return err
		}
		product, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created product %d\n", product.ID)
		return printRecord(r, product)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		var p erp.ProductPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.UpdateProduct(ctx, id, p)
		if err != nil {
			return err
		}
		product, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, product)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteProduct(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "deactivated product %d\n", id)
		return nil
	case "delete-permanent":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteProductPermanent(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "permanently deleted product %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown products action %q", action)
	}
}

func (r *Runner) cmdStocks(ctx context.Context, args []string) error {
	action, rest, err := splitAction(args)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		return runList(r, func(opts erp.ListOptions) (*erp.ListResult[erp.ProductStock], error) {
			return r.client.ListStocks(ctx, opts)
		}, writeStocks)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GetStock(ctx, id)
		if err != nil {
			return err
		}
		stock, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, stock)
	case "create":
		var p erp.ProductStockPayload
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.CreateStock(ctx, p)
		if err != nil {
			return err
		}
		stock, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created stock lot %d\n", stock.ID)
		return printRecord(r, stock)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		var p erp.ProductStockUpdate
		if err := r.payload(&p); err != nil {
			return err
		}
		env, err := r.client.UpdateStock(ctx, id, p)
		if err != nil {
			return err
		}
		stock, err := envelopeRecord(env)
		if err != nil {
			return err
		}
		return printRecord(r, stock)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.DeleteStock(ctx, id)
		if err != nil {
			return err
		}
		if !env.Success {
			return envelopeFailure(env.Message, env.Error)
		}
		fmt.Fprintf(os.Stdout, "deleted stock lot %d\n", id)
		return nil
	case "barcode":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		env, err := r.client.GenerateBarcode(ctx, id)
		if err != nil {
			return err
		}
		gen, err := envelopeData(env)
		if err != nil {
			return err
		}
		if r.options.JSON {
			return writeJSON(gen)
		}
		fmt.Fprintf(os.Stdout, "next barcode for %s: %s\n", gen.ProductCode, gen.NextBarcode)
		return nil
	default:
		return fmt.Errorf("unknown stocks action %q", action)
	}
}
