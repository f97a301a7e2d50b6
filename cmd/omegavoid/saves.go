package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexkorep-games/omega-void-sub000/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage save slots",
	Long: `List or delete save slots in the saves database.

Examples:
  omegavoid saves list
  omegavoid saves delete 2`,
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List save slots",
	Args:  cobra.NoArgs,
	Run:   runSavesList,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSavesList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	slots, err := store.Slots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing slots: %v\n", err)
		os.Exit(1)
	}
	if len(slots) == 0 {
		fmt.Println("No saves yet.")
		return
	}

	fmt.Printf("%-6s %-10s %s\n", "SLOT", "CREDITS", "SAVED")
	for _, s := range slots {
		fmt.Printf("%-6d %-10d %s\n", s.Slot, s.Cash, s.SavedAt.Format("2006-01-02 15:04:05"))
	}
}

func runSavesDelete(_ *cobra.Command, args []string) {
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: slot must be an integer")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.Delete(slot); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting slot %d: %v\n", slot, err)
		os.Exit(1)
	}
	fmt.Printf("Deleted slot %d.\n", slot)
}
