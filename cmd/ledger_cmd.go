package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/westmarch/internal/memory"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and maintain the household memory ledger",
	}
	cmd.AddCommand(ledgerListCmd())
	cmd.AddCommand(ledgerSearchCmd())
	cmd.AddCommand(ledgerShowCmd())
	cmd.AddCommand(ledgerCleanCmd())
	return cmd
}

func openLedger() (*memory.Ledger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return memory.NewLedger(cfg.Memory.Path)
}

func ledgerListCmd() *cobra.Command {
	var jsonOutput bool
	var tagFilter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := openLedger()
			if err != nil {
				return err
			}
			entries := ledger.LoadAll()
			if tagFilter != "" {
				entries = filterByTag(entries, tagFilter)
			}
			printEntries(entries, jsonOutput)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().StringVar(&tagFilter, "tag", "", "only entries bearing this tag")
	return cmd
}

func ledgerSearchCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search entries by content or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := openLedger()
			if err != nil {
				return err
			}
			printEntries(ledger.Search(args[0]), jsonOutput)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func ledgerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := openLedger()
			if err != nil {
				return err
			}
			for _, e := range ledger.LoadAll() {
				if e.ID == args[0] {
					fmt.Printf("ID:        %s\n", e.ID)
					fmt.Printf("Timestamp: %s\n", e.Timestamp)
					fmt.Printf("Tags:      %s\n", strings.Join(e.Tags, ", "))
					fmt.Printf("\n%s\n", e.Content)
					return nil
				}
			}
			return fmt.Errorf("no entry with id %s", args[0])
		},
	}
}

func ledgerCleanCmd() *cobra.Command {
	var tagFilter string
	var yes bool
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove entries (all, or those bearing --tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to modify the ledger without --yes")
			}
			ledger, err := openLedger()
			if err != nil {
				return err
			}

			entries := ledger.LoadAll()
			var kept []memory.Entry
			if tagFilter != "" {
				for _, e := range entries {
					if !hasTag(e, tagFilter) {
						kept = append(kept, e)
					}
				}
			}
			if err := ledger.ReplaceAll(kept); err != nil {
				return err
			}
			fmt.Printf("Removed %d entries, kept %d.\n", len(entries)-len(kept), len(kept))
			return nil
		},
	}
	cmd.Flags().StringVar(&tagFilter, "tag", "", "only remove entries bearing this tag")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the removal")
	return cmd
}

func filterByTag(entries []memory.Entry, tag string) []memory.Entry {
	var out []memory.Entry
	for _, e := range entries {
		if hasTag(e, tag) {
			out = append(out, e)
		}
	}
	return out
}

func hasTag(e memory.Entry, tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func printEntries(entries []memory.Entry, jsonOutput bool) {
	if jsonOutput {
		data, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(entries) == 0 {
		fmt.Println("The ledger holds no matching entries.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTIMESTAMP\tTAGS\tCONTENT\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.ID,
			e.Timestamp,
			strings.Join(e.Tags, ","),
			truncateStr(strings.ReplaceAll(e.Content, "\n", " "), 60),
		)
	}
	tw.Flush()
}

func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
