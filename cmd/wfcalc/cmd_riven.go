package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sigmazhou/warframe-damage-calculator/internal/riven"
)

var rivenConfigPath string

var rivenCmd = &cobra.Command{
	Use:   "riven",
	Short: "Resolve riven roll values from a yaml file",
	Long: `Resolves a rolled riven configuration into final stat values: the
average roll plus the ±10% min/max range per stat.`,
	RunE: runRiven,
}

func init() {
	rivenCmd.Flags().StringVar(&rivenConfigPath, "riven", "", "path to riven yaml (required)")
	_ = rivenCmd.MarkFlagRequired("riven")
}

func runRiven(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(rivenConfigPath)
	if err != nil {
		return fmt.Errorf("reading riven file: %w", err)
	}
	var cfg riven.RollConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parsing riven file %s: %w", rivenConfigPath, err)
	}

	rolls, err := riven.Resolve(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"weapon_type": cfg.WeaponType,
		"disposition": cfg.Disposition,
		"rolls":       rolls,
	})
}
