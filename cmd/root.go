package cmd

import (
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verbose bool
var driverName string
var mappings []string
var pokes []string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atflash",
	Short: "Artery AT32 flash identification",
	Long: `Identifies Artery AT32 microcontrollers and the geometry of their
internal flash. The target is described by raw memory dumps (--map) and
register values (--poke).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			return flag.Set("v", "1")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func init() {
	/* glog registers its flags on the standard flag set */
	flag.Set("logtostderr", "true")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "make verbose (enable debug logging)")
	rootCmd.PersistentFlags().StringVarP(&driverName, "driver", "d", "artery", "flash driver")
	rootCmd.PersistentFlags().StringArrayVarP(&mappings, "map", "m", nil, "map a memory dump, as address=file")
	rootCmd.PersistentFlags().StringArrayVarP(&pokes, "poke", "p", nil, "set a 32-bit word, as address=value")
}
