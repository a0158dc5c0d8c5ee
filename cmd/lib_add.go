package cmd

import (
	"fmt"

	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

var addItem struct {
	part, color, model string
	ctype, yield       string
	region, metered    string
	iot, chip          string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one record to the library",
	Long: `Add a consumable record. Part number, color, and printer model are
required; the remaining fields are optional.

Example:
  hfdata lib add --part 006R01452 --color Cyan --model "Phaser 5500" \
    --type Toner --yield 24000 --region DMO-E`,
	Args: cobra.NoArgs,
	RunE: runLibAdd,
}

func init() {
	addCmd.Flags().StringVar(&addItem.part, "part", "", "Part number")
	addCmd.Flags().StringVar(&addItem.color, "color", "", "Color or drum type")
	addCmd.Flags().StringVar(&addItem.model, "model", "", "Printer model")
	addCmd.Flags().StringVar(&addItem.ctype, "type", "", "Consumable type (Toner, Drum, ...)")
	addCmd.Flags().StringVar(&addItem.yield, "yield", "", "Page yield")
	addCmd.Flags().StringVar(&addItem.region, "region", "", "Region/zone")
	addCmd.Flags().StringVar(&addItem.metered, "metered", "", "Metered or sold")
	addCmd.Flags().StringVar(&addItem.iot, "iot", "", "IOT codename")
	addCmd.Flags().StringVar(&addItem.chip, "chip", "", "Chip type")
	_ = addCmd.MarkFlagRequired("part")
	_ = addCmd.MarkFlagRequired("color")
	_ = addCmd.MarkFlagRequired("model")
	libCmd.AddCommand(addCmd)
}

func runLibAdd(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	store, err := openLibrary()
	if err != nil {
		return err
	}
	item := library.Item{
		PartNumber:     addItem.part,
		Color:          addItem.color,
		PrinterModel:   addItem.model,
		ConsumableType: addItem.ctype,
		Yield:          library.FlexString(addItem.yield),
		RegionZone:     addItem.region,
		MeteredSold:    addItem.metered,
		IOTCodename:    addItem.iot,
		ChipType:       addItem.chip,
	}
	if err := store.Append(item); err != nil {
		return err
	}
	fmt.Printf("Added %s (%s) for %s — %d item(s) in %s\n",
		item.PartNumber, item.Color, item.PrinterModel, store.Len(), store.Path())
	return nil
}
