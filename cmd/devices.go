package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/takeshy/simshots/internal/device"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List supported simulator devices",
	Long: `List the device names accepted in the "devices" configuration key
together with the ios-sim flags each one selects.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tRETINA\tTALL")
	fmt.Fprintln(w, "----\t------\t------\t----")
	for _, p := range device.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Family, yesNo(p.Retina), yesNo(p.Tall))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
