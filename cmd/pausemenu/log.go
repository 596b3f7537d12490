package pausemenu

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sjzar/pausemenu/internal/errors"
	"github.com/sjzar/pausemenu/internal/pausemenu/conf"
	"github.com/sjzar/pausemenu/pkg/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Debug bool

func initLog(cmd *cobra.Command, args []string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logrus.SetLevel(logrus.InfoLevel)

	if Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logrus.SetLevel(logrus.DebugLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// initTuiLog keeps log output off the terminal while the TUI owns it. With
// --debug the log goes to pausemenu.log in the config directory.
func initTuiLog(cmd *cobra.Command, args []string) {
	logOutput := io.Discard

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		logpath := configDir
		if logpath == "" {
			logpath = os.Getenv(conf.EnvConfigDir)
		}
		if logpath == "" {
			logpath = config.DefaultPath(conf.AppName)
		}
		if err := config.PrepareDir(logpath); err != nil {
			panic(err)
		}
		logFD, err := os.OpenFile(filepath.Join(logpath, "pausemenu.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(err)
		}
		logOutput = logFD
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOutput, NoColor: true, TimeFormat: time.RFC3339})
	logrus.SetOutput(logOutput)
}

// printFatal reports an error that ended the command and exits with status
// 1. The full chain is only printed with --debug.
func printFatal(err error) {
	if Debug {
		fmt.Fprintln(os.Stderr, errors.FormatErrorChain(err))
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}
