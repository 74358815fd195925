// Command shipbatch turns a marketplace order export into label batch CSVs
// without a database.
//
//	shipbatch -orders export.csv [-settings settings.yaml] [-out exports]
//
// One label file is written per label size that has shipments, plus a packing
// manifest. When any shipment cannot be classified nothing is written and the
// failures are listed on stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/in/orderexport"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/in/settingsfile"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/exportstore"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/labelcsv"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/logger"

	"go.uber.org/zap"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now()))
}

type options struct {
	orders   string
	settings string
	out      string
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("shipbatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.orders, "orders", "", "marketplace order export CSV (required)")
	fs.StringVar(&opts.settings, "settings", "", "shipping settings YAML; defaults apply when omitted")
	fs.StringVar(&opts.out, "out", "exports", "directory for label and manifest files")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.orders == "" {
		fs.Usage()
		return options{}, errors.New("-orders is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, now time.Time) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logger.New(logger.Config{Level: opts.logLevel, Format: "console", Output: "stderr"})
	defer func() { _ = log.Sync() }()

	plan, err := buildPlan(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	for _, r := range plan.Rejected {
		log.Warn("order row skipped", zap.Int("line", r.Line), zap.String("order", r.OrderID), zap.Error(r.Cause))
	}

	if err := plan.Err(); err != nil {
		if len(plan.Failures) == 0 {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
		fmt.Fprintf(stderr, "%d shipment(s) could not be classified; no files written:\n", len(plan.Failures))
		for _, f := range plan.Failures {
			fmt.Fprintf(stderr, "  %s\n", f.Error())
		}
		return exitFailure
	}

	written, err := writeFiles(ctx, opts.out, plan, now)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	for _, w := range written {
		fmt.Fprintln(stdout, w)
	}
	return exitOK
}

func buildPlan(opts options) (services.BatchPlan, error) {
	s, err := settingsfile.Load(opts.settings)
	if err != nil {
		return services.BatchPlan{}, fmt.Errorf("settings: %w", err)
	}

	f, err := os.Open(opts.orders)
	if err != nil {
		return services.BatchPlan{}, err
	}
	defer f.Close()

	records, err := orderexport.NewReader().Read(f)
	if err != nil {
		return services.BatchPlan{}, fmt.Errorf("%s: %w", opts.orders, err)
	}

	return services.NewBatchBuilder().Build(records, s)
}

// writeFiles stores one label file per non-empty label size and the manifest,
// returning the written locations.
func writeFiles(ctx context.Context, dir string, plan services.BatchPlan, now time.Time) ([]string, error) {
	store, err := exportstore.NewFileStore(dir)
	if err != nil {
		return nil, err
	}

	encoder := labelcsv.NewEncoder()

	var written []string
	for _, part := range services.NewExportPartitioner().PartitionAll(plan.Shipments()) {
		data, err := encoder.Encode(part.Shipments)
		if err != nil {
			return written, err
		}
		location, err := store.Put(ctx, encoder.FileName(commands.LabelsPrefix, part.LabelSize, now), encoder.ContentType(), data)
		if err != nil {
			return written, err
		}
		written = append(written, location)
	}

	manifest, err := labelcsv.EncodeManifest(services.NewPackingManifestBuilder().Build(plan.Entries))
	if err != nil {
		return written, err
	}
	location, err := store.Put(ctx, labelcsv.ManifestFileName(now), encoder.ContentType(), manifest)
	if err != nil {
		return written, err
	}

	return append(written, location), nil
}
