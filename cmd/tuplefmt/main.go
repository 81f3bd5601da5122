// Command tuplefmt renders its arguments as a tuple.
//
// Each argument is decoded as a YAML scalar, so 1 is an int, 1.5 a float,
// true a bool and null (or ~) an absent value. Everything else is kept as
// the exact string given, including quotes, padding and "#" text.
//
//	$ tuplefmt 1 a null true
//	(1, a, , true)
//
// Flags:
//
//	-sort   order the arguments naturally before decoding (env TUPLEFMT_SORT)
//	-tail   print the tail rendering, without the opening parenthesis
//
// Arguments starting with "-" are read as flags. Put "--" before values
// such as negative numbers:
//
//	$ tuplefmt -- -1 2
//	(-1, 2)
//
// Logging is configured from LOG_JSON and LOG_LEVEL and written to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"facette.io/natsort"
	"github.com/amp-labs/amp-tuple/envutil"
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/logger"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/amp-labs/amp-tuple/xform"
	"github.com/google/uuid"
)

type config struct {
	sort bool
	tail bool
}

func main() {
	ctx := context.Background()

	logger.ConfigureLogging("tuplefmt", logger.WithOutput(os.Stderr))

	if err := run(ctx, logger.Get(ctx), os.Args[1:], os.Stdout); err != nil {
		logger.Fatal("tuplefmt failed", "error", err)
	}
}

func parseFlags(args []string) (config, []string, error) {
	var cfg config

	fs := flag.NewFlagSet("tuplefmt", flag.ContinueOnError)
	fs.BoolVar(&cfg.sort, "sort",
		envutil.Bool("TUPLEFMT_SORT", envutil.Default(false)).ValueOrElse(false),
		"sort values in natural order before decoding")
	fs.BoolVar(&cfg.tail, "tail", false, "print the tail rendering")

	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	return cfg, fs.Args(), nil
}

func decode(args []string) ([]any, error) {
	var errs errors.Collection

	values := make([]any, 0, len(args))

	for i, arg := range args {
		value, err := xform.Scalar(arg)
		if err != nil {
			errs.Add(fmt.Errorf("argument %d: %w", i+1, err))

			continue
		}

		values = append(values, value)
	}

	return values, errs.GetError()
}

func run(ctx context.Context, log *slog.Logger, args []string, out io.Writer) error {
	cfg, raw, err := parseFlags(args)
	if err != nil {
		return err
	}

	log = log.With("run_id", uuid.NewString())

	if cfg.sort {
		natsort.Sort(raw)
	}

	values, err := decode(raw)
	if err != nil {
		return err
	}

	tup, err := tuple.Of(values...)
	if err != nil {
		return err
	}

	rendered := tup.String()
	if cfg.tail {
		rendered = tuple.Tail(tup)
	}

	log.InfoContext(ctx, "rendered tuple", "size", tup.Len(), "sorted", cfg.sort)

	_, err = fmt.Fprintln(out, rendered)

	return err
}
