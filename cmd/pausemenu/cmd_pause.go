package pausemenu

import (
	"fmt"

	"github.com/sjzar/pausemenu/internal/pausemenu"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	pauseCmd.Flags().IntVarP(&pid, "pid", "p", 0, "pid")
	resumeCmd.Flags().IntVarP(&pid, "pid", "p", 0, "pid")
	_ = pauseCmd.MarkFlagRequired("pid")
	_ = resumeCmd.MarkFlagRequired("pid")
}

var pid int

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Suspend a process",
	Run: func(cmd *cobra.Command, args []string) {
		m := pausemenu.New()
		if err := m.CommandPause(pid); err != nil {
			log.Err(err).Int("pid", pid).Msg("pause failed")
			printFatal(err)
			return
		}
		fmt.Printf("paused %d\n", pid)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a suspended process",
	Run: func(cmd *cobra.Command, args []string) {
		m := pausemenu.New()
		if err := m.CommandResume(pid); err != nil {
			log.Err(err).Int("pid", pid).Msg("resume failed")
			printFatal(err)
			return
		}
		fmt.Printf("resumed %d\n", pid)
	},
}
