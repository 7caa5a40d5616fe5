package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtour/internal/config"
	"github.com/katalvlaran/lvtour/internal/logging"
	"github.com/katalvlaran/lvtour/report"
)

// envPrefix prefixes every environment override, e.g. LVTOUR_LOG_LEVEL.
const envPrefix = "LVTOUR"

// Configuration keys shared by flags, environment and the TOML file.
const (
	keyConfig    = "config"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyNoColor   = "log.no_color"
	keySeparator = "search.separator"
	keyEvents    = "report.events"
)

// app is the state shared by all subcommands once PersistentPreRunE ran.
type app struct {
	conf *viper.Viper
	cfg  config.Config
	log  zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "lvtour",
		Short: "lvtour: exact travelling salesman tours over small labelled graphs",
		Long: `
lvtour finds the minimum-weight tour that starts at a chosen vertex, visits
every other vertex exactly once and returns, using depth-first
branch-and-bound. Inputs are graph descriptions in JSON, YAML or TOML.

Settings come from, in increasing precedence: built-in defaults, the file
named by --config, LVTOUR_* environment variables, and flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	fillCommonFlags(pf)
	_ = a.conf.BindPFlags(pf)

	a.conf.SetEnvPrefix(envPrefix)
	a.conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.conf.AutomaticEnv()

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newVersionCmd())

	return root
}

// fillCommonFlags adds the flags every subcommand accepts.
func fillCommonFlags(flag *pflag.FlagSet) {
	flag.String(keyConfig, "",
		"Configuration file (TOML). Overridden by environment variables and flags.")
	flag.String(keyLogLevel, "info", "Log level: trace, debug, info, warn, error.")
	flag.String(keyLogFormat, config.FormatConsole, "Log format: console or json.")
	flag.Bool(keyNoColor, false, "Disable colors in console logs.")
}

// setup resolves the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if path := a.conf.GetString(keyConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	a.overlayString(keyLogLevel, &cfg.Log.Level)
	a.overlayString(keyLogFormat, &cfg.Log.Format)
	if a.conf.IsSet(keyNoColor) {
		cfg.Log.NoColor = a.conf.GetBool(keyNoColor)
	}
	a.overlayString(keySeparator, &cfg.Search.Separator)
	a.overlayString(keyEvents, &cfg.Report.Events)

	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l
	a.log.Debug().Str("events", cfg.Report.Events).Str("separator", cfg.Search.Separator).Msg("configuration resolved")

	return nil
}

// overlayString replaces *dst when key was set by a flag or the environment.
func (a *app) overlayString(key string, dst *string) {
	if a.conf.IsSet(key) {
		*dst = a.conf.GetString(key)
	}
}

// reporter builds the notification sink selected by report.events.
func (a *app) reporter(out io.Writer) report.Reporter {
	switch a.cfg.Report.Events {
	case config.EventsLog:
		return report.NewLog(a.log)
	case config.EventsNone:
		return report.Discard
	default:
		return report.NewConsole(out)
	}
}

// announce emits an informational notification outside the search.
func (a *app) announce(r report.Reporter, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if err := r.Report(report.Notification{Message: msg, Level: report.Info}); err != nil {
		a.log.Debug().Err(err).Str("notification", msg).Msg("reporter rejected notification")
	}
}
