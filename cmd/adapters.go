package cmd

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/adapter"
)

// adaptersCmd represents the adapters command
var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List connected debug adapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := gousb.NewContext()
		defer ctx.Close()

		found, err := adapter.List(ctx)
		if err != nil {
			return err
		}

		if len(found) == 0 {
			fmt.Println("No debug adapters found")
		}
		for _, m := range found {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adaptersCmd)
}
