package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/angelmondragon/cart-receipt/internal/cart"
	"github.com/angelmondragon/cart-receipt/internal/seed"
	"github.com/angelmondragon/cart-receipt/pkg/config"
	pkgerrors "github.com/angelmondragon/cart-receipt/pkg/errors"
	"github.com/angelmondragon/cart-receipt/pkg/logger"
	"github.com/angelmondragon/cart-receipt/pkg/metrics"
	"github.com/angelmondragon/cart-receipt/pkg/money"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "receipt"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(exitWith(os.Stderr, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load config")))
	}

	logg = logger.New(logger.Options{
		ServiceName: cfg.App.Service(),
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.Format(),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(context.Background(), cfg, logg, os.Stdout); err != nil {
		os.Exit(exitWith(os.Stderr, err))
	}
}

// exitWith prints the public message for err's code to w and returns the
// process exit code for it. Untyped errors count as internal.
func exitWith(w io.Writer, err error) int {
	code := pkgerrors.CodeInternal
	if typed := pkgerrors.As(err); typed != nil {
		code = typed.Code()
	}
	meta := pkgerrors.MetadataFor(code)
	fmt.Fprintf(w, "receipt: %s\n", meta.PublicMessage)
	return meta.ExitCode
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger, out io.Writer) error {
	registry := prometheus.NewRegistry()
	c := cart.New(cart.Params{Observer: metrics.NewCartMetrics(registry)})
	ctx = logg.WithCartID(ctx, c.ID().String())

	entries, source, err := loadEntries(cfg.Seed)
	ctx = logg.WithSource(ctx, source)
	if err != nil {
		logg.Error(logg.WithField(ctx, "error_dump", pkgerrors.Dump(err)), "failed to load cart seed", err)
		return err
	}

	if err := seed.Apply(c, entries); err != nil {
		for _, itemErr := range seed.Errors(err) {
			logg.Warn(logg.WithField(ctx, "error_dump", pkgerrors.Dump(itemErr)), "cart item rejected")
		}
		logg.Error(ctx, "cart seed contains invalid items", err)
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart items")
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"items": c.Len(),
		"total": money.Format(c.Total()),
	}), "cart loaded")

	if _, err := fmt.Fprintln(out, c.FormatTicket()); err != nil {
		logg.Error(ctx, "failed to write ticket", err)
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write ticket")
	}

	if cfg.Metrics.Enabled() {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath, registry); err != nil {
			logg.Error(ctx, "failed to write metrics", err)
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write metrics")
		}
	}
	return nil
}

func loadEntries(cfg config.SeedConfig) ([]seed.Entry, string, error) {
	if cfg.UseSample() {
		return seed.Sample(), seed.SampleSource, nil
	}
	entries, err := seed.LoadFile(cfg.File)
	return entries, cfg.File, err
}
