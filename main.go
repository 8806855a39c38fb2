package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

func newRootCmd() *cobra.Command {
	conf := DefaultConfig()
	var (
		configFile string
		cpuprofile string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "dfcoef",
		Short: "Summarize the MO coefficients in a DIRAC vector print",
		Long: `dfcoef reads the PRIVEC section of a DIRAC output file and
reports, for each molecular orbital, the percentage contribution of
each atom and orbital type, sorted by orbital energy.`,
		Example:      "  dfcoef -i x2c.out -m Cu2O -t 1.0",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lc := zap.NewDevelopmentConfig()
			lc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if verbose {
				lc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			lc.DisableStacktrace = true
			l, err := lc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := mergeConfig(cmd, conf, configFile)
			if err != nil {
				return err
			}
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}
			return run(final, cmd.OutOrStdout(), logger)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&conf.Input, "input", "i", "", "DIRAC output file to read (required)")
	fl.StringVarP(&conf.Molecule, "mol", "m", "", "molecular formula, e.g. Cu2O (required)")
	fl.StringVarP(&conf.Output, "output", "o", "", "write the summary to this file instead of stdout")
	fl.BoolVarP(&conf.Compress, "compress", "c", false, "print one line per MO")
	fl.Float64VarP(&conf.Threshold, "threshold", "t", conf.Threshold,
		"minimum percentage contribution to report")
	fl.IntVarP(&conf.Decimal, "decimal", "d", conf.Decimal,
		"decimal places in the output (1-15)")
	fl.BoolVar(&conf.Debug, "debug", false,
		"print the normalization constant and coefficient sum of each MO")
	fl.BoolVar(&conf.NoSort, "no-sort", false, "keep MOs in the order they are printed")
	fl.StringVar(&configFile, "config", "", "TOML or YAML file with default options")
	fl.StringVar(&cpuprofile, "cpu", "", "write a CPU profile")
	fl.BoolVarP(&verbose, "verbose", "v", false, "toggle debug logging on stderr")
	return cmd
}

// mergeConfig layers flags given on the command line over the
// contents of configFile, if any
func mergeConfig(cmd *cobra.Command, flags Config, configFile string) (Config, error) {
	if configFile == "" {
		return flags, nil
	}
	conf, err := LoadConfig(configFile)
	if err != nil {
		return conf, err
	}
	changed := cmd.Flags().Changed
	if changed("input") {
		conf.Input = flags.Input
	}
	if changed("mol") {
		conf.Molecule = flags.Molecule
	}
	if changed("output") {
		conf.Output = flags.Output
	}
	if changed("compress") {
		conf.Compress = flags.Compress
	}
	if changed("threshold") {
		conf.Threshold = flags.Threshold
	}
	if changed("decimal") {
		conf.Decimal = flags.Decimal
	}
	if changed("debug") {
		conf.Debug = flags.Debug
	}
	if changed("no-sort") {
		conf.NoSort = flags.NoSort
	}
	return conf, nil
}

// run scans conf.Input and writes the summary to conf.Output, or to
// stdout if no output file was requested
func run(conf Config, stdout io.Writer, logger *zap.Logger) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	mol, err := ParseMolecule(conf.Molecule)
	if err != nil {
		return err
	}
	f, err := os.Open(conf.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	logger.Debug("scanning",
		zap.String("input", conf.Input),
		zap.Stringer("molecule", mol),
		zap.Float64("threshold", conf.Threshold),
	)
	res, err := Scan(f, conf, mol, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", conf.Input, err)
	}
	w := stdout
	if conf.Output != "" {
		out, err := os.Create(conf.Output)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}
	err = WriteResults(w, res, Format{
		Compress: conf.Compress,
		Debug:    conf.Debug,
		Decimal:  conf.Decimal,
	})
	if err != nil {
		return err
	}
	logger.Info("summarized MOs", zap.Int("count", res.Len()))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
