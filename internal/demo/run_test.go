package demo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ive_go/internal/demo"
	"github.com/on-the-ground/memo_ive_go/shared/logging"
)

func seededDB(t *testing.T) *demo.PersonDB {
	t.Helper()
	db, err := demo.NewPersonDB()
	require.NoError(t, err)
	require.NoError(t, db.Insert(demo.SamplePeople...))
	return db
}

func TestRun_AllStores(t *testing.T) {
	emails := demo.Emails(demo.SamplePeople)

	for _, name := range []string{demo.StoreSyncMap, demo.StoreGenerational, demo.StoreLRU, demo.StoreRistretto} {
		t.Run(name, func(t *testing.T) {
			db := seededDB(t)
			report, err := demo.Run(context.Background(), demo.Config{
				Store:       name,
				Capacity:    16,
				Parallelism: 2,
				Rounds:      3,
			}, zap.NewNop(), db, emails)
			require.NoError(t, err)

			assert.Equal(t, 9, report.Found)
			assert.Equal(t, 0, report.Missing)
			assert.Equal(t, 0, report.WarmErrs)
			// every email is fetched once during warm-up and never again
			assert.Equal(t, uint64(len(emails)), report.DBLookups)
			assert.Equal(t, uint64(len(emails)), report.Memo.Misses)
		})
	}
}

func TestRun_MissingPeopleAreRetried(t *testing.T) {
	db := seededDB(t)
	emails := []string{"email1", "ghost"}

	report, err := demo.Run(context.Background(), demo.Config{
		Store:       demo.StoreSyncMap,
		Capacity:    16,
		Parallelism: 1,
		Rounds:      2,
	}, logging.NewTestLogger(), db, emails)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Found)
	assert.Equal(t, 2, report.Missing)
	assert.Equal(t, 1, report.WarmErrs)
	// email1 once, ghost on warm-up and on both rounds
	assert.Equal(t, uint64(4), report.DBLookups)
	assert.Equal(t, 1, report.Memo.Len)
}

func TestRun_UnknownStore(t *testing.T) {
	_, err := demo.Run(context.Background(), demo.Config{Store: "redis", Capacity: 1}, zap.NewNop(), seededDB(t), nil)
	assert.ErrorIs(t, err, demo.ErrUnknownStore)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := demo.Run(ctx, demo.Config{Store: demo.StoreSyncMap, Capacity: 1, Rounds: 1}, zap.NewNop(), seededDB(t), []string{"email1"})
	assert.ErrorIs(t, err, context.Canceled)
}
