package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
)

var (
	addItemSource string
)

var addItemCmd = &cobra.Command{
	Use:   "add-item [slot] [element] [rarity]",
	Short: "Add an item to the inventory",
	Long: `Add an item. Aliases are accepted for every field. Examples:

  add-item hat fire epic
  add-item boots water 3
  add-item шлем огонь легендарный --source daily_reward`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{
			"item": map[string]any{
				"slot":    args[0],
				"element": args[1],
				"rarity":  args[2],
			},
		}
		if addItemSource != "" {
			fields["source"] = addItemSource
		}
		return invoke(v1alpha1.MethodAddItem, fields)
	},
}

var equipItemCmd = &cobra.Command{
	Use:   "equip-item [item-id] [slot]",
	Short: "Equip an item, optionally forcing the slot",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{"itemId": args[0]}
		if len(args) == 2 {
			fields["slot"] = args[1]
		}
		return invoke(v1alpha1.MethodEquipItem, fields)
	},
}

var unequipItemCmd = &cobra.Command{
	Use:   "unequip-item [slot]",
	Short: "Clear an item slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodUnequipItem, map[string]any{"slot": args[0]})
	},
}

var equipBestCmd = &cobra.Command{
	Use:   "equip-best",
	Short: "Equip the strongest entry for every slot and artifact type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodEquipBest, nil)
	},
}

func init() {
	addItemCmd.Flags().StringVar(&addItemSource, "source", "", "Acquisition source (daily_reward bypasses the limit)")
}
