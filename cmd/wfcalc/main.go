// wfcalc is the weapon damage calculator CLI: a long-running API server
// plus one-shot build and riven evaluation commands.
//
// Usage:
//
//	wfcalc serve [--config config/wfcalc.yaml]
//	wfcalc calc  --build <build.yaml> [--enemy <faction>] [--simulations N]
//	wfcalc riven --riven <riven.yaml>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "wfcalc",
	Short: "Weapon damage and DPS calculator",
	Long: "wfcalc evaluates weapon builds: mod stacking, elemental and faction\n" +
		"modifiers, crit/status proc models, deterministic DPS and Monte Carlo\n" +
		"engagement simulation.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(rivenCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
