package pausemenu

import (
	"fmt"

	"github.com/sjzar/pausemenu/internal/pausemenu"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "case-insensitive name filter")
	listCmd.Flags().BoolVar(&listHideChildren, "hide-children", false, "hide processes that have a parent")
}

var (
	listFilter       string
	listHideChildren bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List processes owned by the current user",
	Run: func(cmd *cobra.Command, args []string) {
		m := pausemenu.New()
		lines, err := m.CommandList(configDir, listFilter, listHideChildren)
		if err != nil {
			log.Err(err).Msg("list processes failed")
			printFatal(err)
			return
		}
		for _, line := range lines {
			fmt.Println(line)
		}
	},
}
