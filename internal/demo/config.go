package demo

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// StoreFlag selects the memo store: syncmap, generational, lru or ristretto
	StoreFlag = "store"
	// CapacityFlag bounds the store size for bounded stores
	CapacityFlag = "capacity"
	// ParallelismFlag bounds concurrent computations during warm-up
	ParallelismFlag = "parallelism"
	// RoundsFlag is how many times every email is looked up
	RoundsFlag = "rounds"
	// DebugFlag enables debug logging
	DebugFlag = "debug"
	// HelpFlag is the name of the flag to request printing program usage
	HelpFlag = "help"
)

type Config struct {
	Store       string `mapstructure:"store"`
	Capacity    int    `mapstructure:"capacity"`
	Parallelism int    `mapstructure:"parallelism"`
	Rounds      int    `mapstructure:"rounds"`
	Debug       bool   `mapstructure:"debug"`
	Help        bool   `mapstructure:"help"`
}

func programName(args []string) string {
	base := path.Base(args[0])
	ext := path.Ext(base)
	if len(ext) > 0 {
		base = base[:len(base)-len(ext)]
	}
	return base
}

// Init sets up the flags and the viper instance reading them and the environment
func Init(args []string) (flags *pflag.FlagSet, vcfg *viper.Viper) {
	flags = pflag.NewFlagSet(programName(args), pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage of %s:\n", programName(args))
		flags.PrintDefaults()
	}
	vcfg = viper.New()
	vcfg.SetTypeByDefaultValue(true)

	vcfg.SetDefault(StoreFlag, StoreSyncMap)
	flags.StringP(StoreFlag, "s", StoreSyncMap, "Memo store (syncmap, generational, lru, ristretto)")

	vcfg.SetDefault(CapacityFlag, 1024)
	flags.IntP(CapacityFlag, "c", 1024, "Capacity of bounded stores")

	vcfg.SetDefault(ParallelismFlag, 4)
	flags.IntP(ParallelismFlag, "p", 4, "Concurrent computations during warm-up")

	vcfg.SetDefault(RoundsFlag, 3)
	flags.IntP(RoundsFlag, "r", 3, "Lookup rounds after warm-up")

	vcfg.SetDefault(DebugFlag, false)
	flags.BoolP(DebugFlag, "d", false, "Enable debug logging output")

	vcfg.SetDefault(HelpFlag, false)
	flags.BoolP(HelpFlag, "h", false, "Print program usage")

	// flags are constant, binding cannot fail
	if err := vcfg.BindPFlags(flags); err != nil {
		panic(err)
	}
	vcfg.SetEnvPrefix(programName(args))
	vcfg.AutomaticEnv()
	vcfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return flags, vcfg
}

// Parse reads flags and environment. It returns a nil config when only help was requested.
func Parse(flags *pflag.FlagSet, vcfg *viper.Viper, args []string) (*Config, error) {
	if err := flags.Parse(args[1:]); err != nil {
		flags.Usage()
		return nil, err
	}

	cfg := new(Config)
	if err := vcfg.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if cfg.Help {
		flags.SetOutput(os.Stdout)
		flags.Usage()
		return nil, nil
	}
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", CapacityFlag, cfg.Capacity)
	}
	if cfg.Rounds < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", RoundsFlag, cfg.Rounds)
	}
	return cfg, nil
}
