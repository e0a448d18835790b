package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/izouxv/goReconstruct/catalog"
	"github.com/izouxv/goReconstruct/field"
	"github.com/izouxv/goReconstruct/report"
	"github.com/izouxv/goReconstruct/shamir"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type options struct {
	positions []int
	fieldName string
	prime     *big.Int
	log       zerolog.Logger
}

// solve loads one share file and reconstructs its secret.
func solve(path string, opts options) (*report.Report, error) {
	set, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	if set.N != 0 && set.N != len(set.Shares) {
		opts.log.Warn().
			Str("file", path).
			Int("n", set.N).
			Int("shares", len(set.Shares)).
			Msg("keys.n does not match share count")
	}

	used, err := set.Select(opts.positions...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var secret *big.Int
	if opts.prime != nil {
		secret, err = shamir.CombineMod(used, opts.prime)
	} else {
		secret, err = shamir.Combine(used)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report.New(path, set, used, secret, opts.fieldName)
}

func main() {
	idxList := flag.String("idx", "", "Comma-separated 1-based positions (by ascending x) of exactly k shares to use")
	fieldName := flag.String("field", "", "Interpolate modulo a prime: a registered name (P-256, P-384, P-521, secp256k1, M521) or a literal")
	asJSON := flag.Bool("json", false, "Print a JSON report instead of the bare secret")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.json|file.cbor>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	opts := options{log: log}
	var err error
	if opts.positions, err = catalog.ParsePositions(*idxList); err != nil {
		log.Fatal().Err(err).Str("idx", *idxList).Msg("invalid -idx")
	}
	if *fieldName != "" {
		if opts.prime, err = field.Parse(*fieldName); err != nil {
			log.Fatal().Err(err).Str("field", *fieldName).Msg("invalid -field")
		}
		opts.fieldName = *fieldName
	}

	reports := make([]*report.Report, len(files))
	var group errgroup.Group
	for i, file := range files {
		group.Go(func() error {
			r, err := solve(file, opts)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("reconstruction failed")
	}

	for _, r := range reports {
		switch {
		case *asJSON:
			data, err := r.JSON()
			if err != nil {
				log.Fatal().Err(err).Str("file", r.Source).Msg("encode report")
			}
			fmt.Println(string(data))
		case len(reports) == 1:
			fmt.Println(r.Secret)
		default:
			fmt.Printf("Secret for %s: %s\n", r.Source, r.Secret)
		}
	}
}
