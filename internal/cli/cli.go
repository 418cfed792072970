package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"erpctl/internal/auth"
	"erpctl/internal/config"
	"erpctl/internal/erp"
	"erpctl/internal/session"

	"go.uber.org/zap"
)

type Runner struct {
	options Options
	logger  *zap.Logger
	client  *erp.Client
	ctrl    *auth.Controller
	store   *session.Store
}

func NewRunner(cfg config.Config, logger *zap.Logger, client *erp.Client, ctrl *auth.Controller, store *session.Store) *Runner {
	logger = logger.Named("cli")
	opts := Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		LogFile: cfg.LogFile,
		Debug:   cfg.Debug,
		Limit:   cfg.PageSize,
	}

	return &Runner{
		options: opts,
		logger:  logger,
		client:  client,
		ctrl:    ctrl,
		store:   store,
	}
}

func (r *Runner) Execute() error {
	return r.run(os.Args[1:])
}

func (r *Runner) run(args []string) error {
	opts := &r.options
	var timeoutSeconds int

	fs := flag.NewFlagSet("erpctl", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <resource> <action> [args]\n\n", fs.Name())
		fmt.Fprintln(os.Stderr, "Resources: login, logout, profile, dashboard, vendors, categories,")
		fmt.Fprintln(os.Stderr, "           hsn, customers, products, stocks, invoice")
		fmt.Fprintln(os.Stderr, "Actions:   list, get, create, update, delete (plus per-resource extras)")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.BaseURL, "base-url", opts.BaseURL, "Backend base URL (BASE_URL)")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON format")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug logging")
	fs.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Log file path")
	fs.IntVar(&timeoutSeconds, "timeout", int(opts.Timeout.Seconds()), "Request timeout in seconds")
	fs.StringVar(&opts.Search, "search", "", "Search term for list actions")
	fs.IntVar(&opts.Page, "page", 1, "1-based page number for list actions")
	fs.IntVar(&opts.Limit, "limit", opts.Limit, "Page size for list actions")
	fs.StringVar(&opts.SortBy, "sort", "", "Sort field for list actions")
	fs.StringVar(&opts.Order, "order", "", "Sort order: asc or desc")
	fs.StringVar(&opts.File, "f", "", "JSON payload file for create/update ('-' for stdin)")
	fs.IntVar(&opts.Category, "category", 0, "Filter products by category id")
	fs.StringVar(&opts.Active, "active", "", "Filter products by active flag: true or false")
	fs.Float64Var(&opts.GSTRate, "gst-rate", -1, "Filter HSN codes by exact GST rate")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if timeoutSeconds > 0 {
		opts.Timeout = time.Duration(timeoutSeconds) * time.Second
		r.client.SetTimeout(opts.Timeout)
	}
	if opts.BaseURL != "" {
		r.client.SetBaseURL(opts.BaseURL)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("a resource is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := r.dispatch(ctx, rest[0], rest[1:])
	if err != nil {
		r.logger.Debug("command failed", zap.String("resource", rest[0]), zap.Error(err))
		return fmt.Errorf("%s", friendlyError(err))
	}
	return nil
}

func (r *Runner) dispatch(ctx context.Context, resource string, args []string) error {
	switch resource {
	case "login":
		return r.cmdLogin(ctx, args)
	case "logout":
		return r.cmdLogout(ctx)
	case "profile":
		return r.cmdProfile(ctx)
	case "dashboard":
		return r.cmdDashboard(ctx, args)
	case "vendors":
		return r.cmdVendors(ctx, args)
	case "categories":
		return r.cmdCategories(ctx, args)
	case "hsn":
		return r.cmdHSN(ctx, args)
	case "customers":
		return r.cmdCustomers(ctx, args)
	case "products":
		return r.cmdProducts(ctx, args)
	case "stocks":
		return r.cmdStocks(ctx, args)
	case "invoice":
		return r.cmdInvoice(ctx)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}
