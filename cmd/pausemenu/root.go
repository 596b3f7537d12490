package pausemenu

import (
	"github.com/sjzar/pausemenu/internal/pausemenu"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	// windows only
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "config directory")
	rootCmd.PersistentPreRun = initLog
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command execution failed")
	}
}

var configDir string
var rootCmd = &cobra.Command{
	Use:     "pausemenu",
	Short:   "Pause and resume your own processes",
	Long:    `pausemenu lists the processes owned by the current user and suspends or resumes the one you pick.`,
	Example: `pausemenu`,
	Args:    cobra.MinimumNArgs(0),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PreRun: initTuiLog,
	Run:    Root,
}

func Root(cmd *cobra.Command, args []string) {
	m := pausemenu.New()
	if err := m.Run(configDir); err != nil {
		log.Err(err).Msg("failed to run pausemenu")
		printFatal(err)
	}
}
