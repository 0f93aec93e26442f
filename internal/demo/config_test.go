package demo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/memo_ive_go/internal/demo"
)

func parse(t *testing.T, args ...string) (*demo.Config, error) {
	t.Helper()
	args = append([]string{"memodemo"}, args...)
	flags, vcfg := demo.Init(args)
	return demo.Parse(flags, vcfg, args)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, &demo.Config{
		Store:       demo.StoreSyncMap,
		Capacity:    1024,
		Parallelism: 4,
		Rounds:      3,
	}, cfg)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := parse(t, "--store", "lru", "-c", "8", "--rounds=5", "-d")
	require.NoError(t, err)
	assert.Equal(t, demo.StoreLRU, cfg.Store)
	assert.Equal(t, 8, cfg.Capacity)
	assert.Equal(t, 5, cfg.Rounds)
	assert.True(t, cfg.Debug)
}

func TestParse_Env(t *testing.T) {
	t.Setenv("MEMODEMO_STORE", "ristretto")
	t.Setenv("MEMODEMO_ROUNDS", "7")

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, demo.StoreRistretto, cfg.Store)
	assert.Equal(t, 7, cfg.Rounds)

	// flags win over the environment
	cfg, err = parse(t, "--rounds", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Rounds)
}

func TestParse_Invalid(t *testing.T) {
	_, err := parse(t, "--capacity", "0")
	assert.Error(t, err)

	_, err = parse(t, "--no-such-flag")
	assert.Error(t, err)
}

func TestParse_Help(t *testing.T) {
	cfg, err := parse(t, "--help")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}
