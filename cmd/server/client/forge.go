package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
)

var (
	atelierCost int64
)

var forgeCmd = &cobra.Command{
	Use:   "forge [item|artifact] [id...]",
	Short: "Forge hand-picked entries into one of the next rarity",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]any, 0, len(args)-1)
		for _, id := range args[1:] {
			ids = append(ids, id)
		}
		return invoke(v1alpha1.MethodForgeSelection, map[string]any{
			"kind":     args[0],
			"inputIds": ids,
		})
	},
}

var quickForgeCmd = &cobra.Command{
	Use:   "quick-forge [items|artifacts|both]",
	Short: "Forge every affordable group, cascading upwards",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{}
		if len(args) == 1 {
			fields["mode"] = args[0]
		}
		return invoke(v1alpha1.MethodQuickForge, fields)
	},
}

var atelierCmd = &cobra.Command{
	Use:   "atelier [item-id] [element]",
	Short: "Change the element of a legendary or mythic item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{
			"itemId":  args[0],
			"element": args[1],
		}
		if cmd.Flags().Changed("cost") {
			fields["costGold"] = atelierCost
		}
		return invoke(v1alpha1.MethodChangeItemElement, fields)
	},
}

func init() {
	atelierCmd.Flags().Int64Var(&atelierCost, "cost", 0, "Raise the atelier price above the configured cost")
}
