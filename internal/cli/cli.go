package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/complabel/config"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// flags collects the root command's flag values.
type flags struct {
	configPath  string
	dimension   int
	density     float64
	seed        int64
	interactive bool
	noColor     bool
	verify      bool
	verbose     bool
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var f flags
	def := config.Default()

	root := &cobra.Command{
		Use:   "complabel",
		Short: "Label 4-connected components of a random image, depth-first and breadth-first",
		Long: `complabel generates a random square image of foreground and background
cells, then labels the 4-connected components of two identical copies: one
depth-first, one breadth-first. Every foreground cell is printed as
"component,order": both runs agree on component ids, while the discovery
order shows how each traversal walked the component.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return c.run(withLogger(cmd.Context(), c.Logger), cfg, cmd.OutOrStdout())
		},
	}

	pf := root.Flags()
	pf.StringVarP(&f.configPath, "config", "c", "", "TOML settings file")
	pf.IntVarP(&f.dimension, "dimension", "d", def.Dimension,
		fmt.Sprintf("interior side length [%d,%d]", config.MinDimension, config.MaxDimension))
	pf.Float64VarP(&f.density, "density", "p", def.Density, "foreground probability [0,1)")
	pf.Int64Var(&f.seed, "seed", def.Seed, "generator seed (0 = from clock)")
	pf.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for dimension and density")
	pf.BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	pf.BoolVar(&f.verify, "verify", false, "check labeling invariants and compare both runs")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.versionCommand())

	return root
}

// resolveConfig layers defaults, the config file, changed flags and the
// interactive prompt, then normalizes out-of-range values.
func (c *CLI) resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		c.Logger.Debug("loaded config", "path", f.configPath)
	}

	fs := cmd.Flags()
	if fs.Changed("dimension") {
		cfg.Dimension = f.dimension
	}
	if fs.Changed("density") {
		cfg.Density = f.density
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.noColor {
		cfg.Color = false
	}
	if f.verify {
		cfg.Verify = true
	}

	if f.verbose {
		cfg.LogLevel = LogDebug.String()
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		c.SetLogLevel(level)
	} else {
		c.Logger.Warn("unknown log level, keeping info", "log_level", cfg.LogLevel)
	}

	if f.interactive {
		p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		if err := p.Ask(cmd.Context(), &cfg); err != nil {
			return config.Config{}, err
		}
	}

	for _, field := range cfg.Normalize() {
		c.Logger.Warn("value out of range, using default", "field", field)
	}

	return cfg, nil
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "complabel %s\n", Version)
			return err
		},
	}
}
