package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/pure/store"
	"github.com/on-the-ground/memo_ive_go/purefn"
)

const (
	StoreSyncMap      = "syncmap"
	StoreGenerational = "generational"
	StoreLRU          = "lru"
	StoreRistretto    = "ristretto"
)

var ErrUnknownStore = errors.New("unknown store")

// Report summarizes a demo run.
type Report struct {
	DBLookups uint64
	Found     int
	Missing   int
	WarmErrs  int
	Memo      pure.Stats
}

func storeOption(cfg Config) (pure.Option, error) {
	switch cfg.Store {
	case StoreSyncMap, "":
		return pure.WithStore(pure.Store[string, Person](pure.NewSyncMapStore[string, Person]())), nil
	case StoreGenerational:
		return pure.WithStore(pure.Store[string, Person](pure.NewGenerationalStore[string, Person](cfg.Capacity))), nil
	case StoreLRU:
		s, err := store.NewLRU[string, Person](cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return pure.WithStore(s), nil
	case StoreRistretto:
		s, err := store.NewRistretto[string, Person](int64(cfg.Capacity))
		if err != nil {
			return nil, err
		}
		return pure.WithStore(s), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}

// Run memoizes db lookups, warms them for emails, then looks every email up
// cfg.Rounds times. Unknown emails are looked up again on every round, since
// failures are not cached.
func Run(ctx context.Context, cfg Config, logger *zap.Logger, db *PersonDB, emails []string) (Report, error) {
	storeOpt, err := storeOption(cfg)
	if err != nil {
		return Report{}, err
	}

	find := purefn.MemoizeE1(
		db.FindByEmail,
		storeOpt,
		pure.WithLogger(logger),
		pure.WithName("person_by_email"),
	)
	defer find.Close()

	report := Report{}
	if err := find.Warm(ctx, cfg.Parallelism, emails...); err != nil {
		report.WarmErrs = len(multierr.Errors(err))
		logger.Warn("warm-up incomplete", zap.Int("failures", report.WarmErrs), zap.Error(err))
	}

	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		for _, email := range emails {
			person, err := find.Apply(email)
			switch {
			case errors.Is(err, ErrPersonNotFound):
				report.Missing++
			case err != nil:
				return report, err
			default:
				report.Found++
				logger.Debug("found person", zap.String("email", email), zap.String("name", person.Name))
			}
		}
	}

	report.DBLookups = db.Lookups()
	report.Memo = find.Stats()
	return report, nil
}

// Emails returns the lookup keys of people.
func Emails(people []Person) []string {
	return lo.Map(people, func(p Person, _ int) string {
		return p.Email
	})
}
