package main

import (
	"context"
	"fmt"

	"github.com/dtromb/automata/definition"
	"github.com/dtromb/automata/internal/config"
	"github.com/dtromb/automata/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands once the configuration
// has been loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fa",
		Short: "Run, check and compile finite automata definitions",
		Long: `fa works with DFA, NFA and epsilon-NFA definitions written as YAML
documents. It tests input words, traces executions step by step, checks the
accept/reject words embedded in a document and compiles any definition down
to an equivalent DFA by subset construction.

Configuration is read from (highest priority first): command-line flags,
FA_* environment variables (FA_LOG_LEVEL, FA_INPUT_SEPARATOR, ...), the
file named by --config or FA_CONFIG_FILE, and .fa.yaml in the working
directory.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .fa.yaml, can also use FA_CONFIG_FILE env var)")
	flags.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.StringP("separator", "s", "", "input symbol separator; empty means one symbol per character")

	root.AddCommand(
		newTestCmd(a),
		newTraceCmd(a),
		newCheckCmd(a),
		newCompileCmd(a),
		newDumpCmd(a),
		newWatchCmd(a),
	)
	return root
}

var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"separator":  "input.separator",
}

// bindFlags makes the persistent flags override config keys when set.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	a.cfg = cfg
	a.logger = logging.NewLogger(lc)
	return nil
}

func (a *app) load(ctx context.Context, path string) (*definition.Document, error) {
	doc, err := definition.Load(path)
	if err != nil {
		a.logger.Error(ctx, err, "loading definition", "path", path)
		return nil, err
	}
	a.logger.Debug(ctx, "loaded definition", "path", path, "name", doc.Name, "kind", string(doc.Kind))
	return doc, nil
}

// machine builds the document, compiled to a DFA when compiled is set.
func (a *app) machine(ctx context.Context, doc *definition.Document, compiled bool) (definition.Machine, error) {
	if compiled {
		var err error
		if doc, err = doc.Compile(); err != nil {
			return nil, err
		}
		a.logger.Debug(ctx, "compiled definition", "name", doc.Name, "states", len(doc.Transitions))
	}
	m, err := doc.Machine()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Name, err)
	}
	return m, nil
}

func (a *app) symbols(line string) []string {
	return definition.Symbols(line, a.cfg.Input.Separator)
}
