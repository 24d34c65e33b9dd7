/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/content"
	"github.com/swhkit/swhedit/pkg/savegame"
)

// backupStore archives a file before it is overwritten
type backupStore interface {
	StoreFile(path string) (ksuid.KSUID, bool, error)
}

type editOptions struct {
	Input      string
	Output     string
	Experience bool
	MaxXP      uint32
	Water      *uint32
	Size       *uint32
	Inventory  bool
	AddItems   []string
	Hats       bool
}

func (o *editOptions) validate() error {
	if o.Output == "" {
		return errors.New("an output file is required (-o)")
	}
	if !o.Experience && o.Water == nil && o.Size == nil && !o.Inventory && len(o.AddItems) == 0 && !o.Hats {
		return errors.New("specify a modification to make")
	}
	for _, name := range o.AddItems {
		if name == "" {
			return errors.New("empty item name in --additem")
		}
	}
	return nil
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "Write an edited copy of a savegame",
	Long: `Load a savegame, apply the requested changes and write the result with a
fresh checksum. The output may be the input file itself; whatever it replaces
is archived first unless backups are disabled.

Examples:
  swhedit edit slot1.dat -o slot1.dat --experience --water 50000
  swhedit edit slot1.dat -o edited.dat --additem jetpack,goggles --additem armor_3
  swhedit edit slot1.dat -o edited.dat --inventory --hats`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		flags := cmd.Flags()

		opts := editOptions{Input: args[0], MaxXP: cfg.Edit.MaxXP}
		opts.Output, _ = flags.GetString("output")
		opts.Experience, _ = flags.GetBool("experience")
		opts.Inventory, _ = flags.GetBool("inventory")
		opts.Hats, _ = flags.GetBool("hats")
		if flags.Changed("water") {
			water, _ := flags.GetUint32("water")
			opts.Water = &water
		}
		if flags.Changed("size") {
			size, _ := flags.GetUint32("size")
			opts.Size = &size
		}
		items, _ := flags.GetStringSlice("additem")
		for _, item := range items {
			opts.AddItems = append(opts.AddItems, strings.TrimSpace(item))
		}
		if err := opts.validate(); err != nil {
			return err
		}

		tables, err := content.LoadOrDefault(cfg.ContentFile)
		if err != nil {
			return err
		}

		archive, err := openArchive(cfg)
		if err != nil {
			return err
		}
		var store backupStore
		if archive != nil {
			defer archive.Close()
			store = archive
		}

		return runEdit(cmd.OutOrStdout(), opts, tables, store)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("output", "o", "", "Output filename (required)")
	editCmd.Flags().BoolP("experience", "e", false, "Raise all unlocked characters' XP to edit.max_xp")
	editCmd.Flags().Uint32P("water", "w", 0, "Set water (money)")
	editCmd.Flags().Uint32P("size", "s", 0, "Set total inventory size")
	editCmd.Flags().BoolP("inventory", "i", false,
		"Add a large set of powerful items; inventory space grows to match unless --size is given")
	editCmd.Flags().StringSliceP("additem", "a", nil,
		"Add items by name; repeat or separate with commas (inventory grows if required)")
	editCmd.Flags().BoolP("hats", "t", false, "Add every hat not seen yet")
	if err := editCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func runEdit(w io.Writer, opts editOptions, tables *content.Tables, store backupStore) error {
	sg, err := savegame.Load(opts.Input)
	if err != nil {
		return err
	}

	if opts.Experience {
		for _, change := range sg.MaxExperience(opts.MaxXP) {
			switch {
			case !change.HadXP:
				fmt.Fprintf(w, "Set %s XP to %d (from 0 XP previously)\n", change.Name, opts.MaxXP)
			case change.Changed:
				fmt.Fprintf(w, "Set %s XP to %d\n", change.Name, opts.MaxXP)
			default:
				fmt.Fprintf(w, "%s is already at %d XP, skipping\n", change.Name, change.Before)
			}
		}
	}

	if opts.Water != nil {
		sg.SetWater(*opts.Water)
		fmt.Fprintf(w, "Set water value to %d\n", *opts.Water)
	}

	if opts.Size != nil {
		sg.SetInventorySize(*opts.Size)
		fmt.Fprintf(w, "Set inventory size to %d\n", *opts.Size)
	}

	if opts.Inventory {
		items := tables.ItemsFor(sg)
		if opts.Size == nil {
			sg.SetInventorySize(sg.InventorySize + uint32(len(items)))
		}
		if _, err := sg.AddItems(items); err != nil {
			return err
		}
		if opts.Size == nil {
			fmt.Fprintf(w, "Added %d items to inventory (and added that much inventory space)\n", len(items))
		} else {
			fmt.Fprintf(w, "Added %d items to inventory\n", len(items))
		}
	}

	for _, name := range opts.AddItems {
		if _, err := sg.AddItem(name); err != nil {
			return err
		}
		fmt.Fprintf(w, "Added item: %s\n", name)
	}

	if prev, changed := sg.EnsureInventoryCapacity(); changed {
		fmt.Fprintf(w, "Increasing inventory size to %d to accommodate items (previously %d)\n",
			sg.InventorySize, prev)
	}

	if opts.Hats {
		added, present, err := sg.AddAllHats(tables.HatsFor(sg))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Added %d hats (%d already present)\n", added, present)
	}

	if err := backupBefore(w, store, opts.Output); err != nil {
		return err
	}
	if err := savegame.Save(sg, opts.Output); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSaved edited savegame to %s\n", opts.Output)
	return nil
}

// backupBefore archives path if it exists and store is set
func backupBefore(w io.Writer, store backupStore, path string) error {
	if store == nil {
		return nil
	}
	id, stored, err := store.StoreFile(path)
	if err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}
	if stored {
		slog.Info("archived savegame", "path", path, "backup", id.String())
		fmt.Fprintf(w, "Backed up %s as %s\n", path, id)
	}
	return nil
}
