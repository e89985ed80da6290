package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show counts, limits, equipped loadout, bonuses and gold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodGetSummary, nil)
	},
}

var seedDemoCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Fill an empty inventory with the demo loadout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodSeedDemo, nil)
	},
}
