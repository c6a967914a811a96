package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/log"
	"github.com/macropower/sdkconf/pkg/version"
)

const (
	EnvSDKPath   = "SDKCONF_SDKPATH"
	EnvFormat    = "SDKCONF_FORMAT"
	EnvLogLevel  = "SDKCONF_LOG_LEVEL"
	EnvLogFormat = "SDKCONF_LOG_FORMAT"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrArgument         = errors.New("argument error")
	ErrInvalidArgument  = errors.New("invalid argument")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", envOr(EnvLogLevel, "warn"),
		"Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", envOr(EnvLogFormat, "text"),
		"Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.sdkPath, "sdkpath", "s", envOr(EnvSDKPath, defaultSDKPath()),
		"Directory holding the SDK configuration files")
	cmd.PersistentFlags().StringVar(args.format, "format", envOr(EnvFormat, "yaml"),
		"File format of the configuration files (yaml, json)")

	must(cmd.MarkPersistentFlagDirname("sdkpath"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go",
			slog.String("sdkpath", args.GetSDKPath()),
			slog.String("format", args.GetFormat()),
		)

		return nil
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewGetCmd(args))
	cmd.AddCommand(NewFindCmd(args))
	cmd.AddCommand(NewFindKeyCmd(args))
	cmd.AddCommand(NewAddKeysCmd(args))
	cmd.AddCommand(NewRmKeysCmd(args))
	cmd.AddCommand(NewKitCmd(args))
	cmd.AddCommand(NewToolChainCmd(args))
	cmd.AddCommand(NewQtCmd(args))
	cmd.AddCommand(NewDeviceCmd(args))
	cmd.AddCommand(NewCMakeCmd(args))
	cmd.AddCommand(NewDebuggerCmd(args))
	cmd.AddCommand(NewCheckCmd(args))

	return cmd
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func defaultSDKPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sdkconf"
	}

	return filepath.Join(dir, "sdkconf")
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
