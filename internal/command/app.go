package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/on-the-ground/memocache/internal/binom"
	"github.com/on-the-ground/memocache/internal/config"
	"github.com/on-the-ground/memocache/memo"
	"github.com/on-the-ground/memocache/memo/memdbstore"
	"github.com/on-the-ground/memocache/shared/logger"
)

var (
	ErrNoPairs     = errors.New("no N,K pairs given")
	ErrInvalidPair = errors.New("invalid pair")
)

func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "memocalc",
		Usage: "memoized calculations",
		Commands: []*cli.Command{
			binomCommand(),
		},
	}
}

func binomCommand() *cli.Command {
	return &cli.Command{
		Name:      "binom",
		Usage:     "binomial coefficients \"N choose K\" for 1 <= N <= 20",
		ArgsUsage: "N,K [N,K ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log cache activity at debug level",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print cache counters after the results",
			},
		},
		Action: runBinom,
	}
}

func runBinom(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return ErrNoPairs
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.Bool("verbose") {
		cfg.Log.Level = "debug"
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	calc, err := newCalculator(cfg, log)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	var result *multierror.Error
	for _, arg := range args {
		key, err := parsePair(arg)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		v, err := calc.Value(key.First, key.Second)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("C(%d,%d): %w", key.First, key.Second, err))
			continue
		}
		fmt.Fprintf(w, "C(%d,%d) = %d\n", key.First, key.Second, v)
	}

	if cmd.Bool("stats") {
		s := calc.Stats()
		fmt.Fprintf(w, "hits=%d misses=%d computations=%d failures=%d entries=%d\n",
			s.Hits, s.Misses, s.Computations, s.Failures, s.Entries)
	}
	return result.ErrorOrNil()
}

func newCalculator(cfg config.Config, log *zap.Logger) (*memo.Fallible[uint64, uint64, uint64], error) {
	opts := cfg.Options(log)
	switch cfg.Backend {
	case config.BackendTrie:
		return binom.NewCalculatorWithStore(memo.NewTrieStore[uint64, uint64, uint64](), opts...), nil
	case config.BackendSharded:
		return binom.NewCalculatorWithStore(memo.NewShardedStore[uint64, uint64, uint64](max(cfg.Shards, 1)), opts...), nil
	case config.BackendMemDB:
		store, err := memdbstore.New[uint64, uint64, uint64]()
		if err != nil {
			return nil, err
		}
		return binom.NewCalculatorWithStore(store, opts...), nil
	default:
		return binom.NewCalculator(opts...), nil
	}
}

func parsePair(s string) (memo.Key[uint64, uint64], error) {
	ns, ks, ok := strings.Cut(s, ",")
	if !ok {
		return memo.Key[uint64, uint64]{}, fmt.Errorf("%w %q: want N,K", ErrInvalidPair, s)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(ns), 10, 64)
	if err != nil {
		return memo.Key[uint64, uint64]{}, fmt.Errorf("%w %q: %w", ErrInvalidPair, s, err)
	}
	k, err := strconv.ParseUint(strings.TrimSpace(ks), 10, 64)
	if err != nil {
		return memo.Key[uint64, uint64]{}, fmt.Errorf("%w %q: %w", ErrInvalidPair, s, err)
	}
	return memo.KeyOf(n, k), nil
}
