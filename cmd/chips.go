package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/chipdb"
)

// selectChips returns the exact part when name is one, otherwise every
// part whose name contains it.
func selectChips(name string) []chipdb.ChipRecord {
	if name == "" {
		return chipdb.All()
	}
	if m, ok := chipdb.ByName(name); ok {
		return []chipdb.ChipRecord{m}
	}

	filter := strings.ToUpper(name)
	var result []chipdb.ChipRecord
	for _, m := range chipdb.All() {
		if strings.Contains(m.Name, filter) {
			result = append(result, m)
		}
	}
	return result
}

// chipsCmd represents the chips command
var chipsCmd = &cobra.Command{
	Use:   "chips [name]",
	Short: "List known parts",
	Long: `List the parts in the chip table. With an argument, the part of that
name is shown, or every part whose name contains it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		for _, m := range selectChips(name) {
			fmt.Printf("%08x %5dkB %5d %s\n", m.ID, m.FlashSizeKB, m.SectorSize, m.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chipsCmd)
}
