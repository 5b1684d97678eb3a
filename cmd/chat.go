package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/westmarch/internal/household"
	"github.com/nextlevelbuilder/westmarch/internal/memory"
	"github.com/nextlevelbuilder/westmarch/internal/orchestrator"
	"github.com/nextlevelbuilder/westmarch/internal/replay"
)

func chatCmd() *cobra.Command {
	var (
		task    string
		message string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Converse with the household from the terminal",
		Long: `Chat with the household directly, without the gateway.

Examples:
  westmarch chat                                   # Interactive parlour session
  westmarch chat --task drafting -m "a thank-you"  # One-shot drafting request
  westmarch chat --task recall_memory -m "the poem"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, task, message)
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", orchestrator.TaskParlourDiscussion, "workflow task name")
	cmd.Flags().StringVarP(&message, "message", "m", "", "one-shot message (omit for interactive mode)")

	return cmd
}

func runChat(cmd *cobra.Command, task, message string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if replay.Is(task) {
		for _, rec := range replay.Transcript() {
			fmt.Printf("%s (%s):\n%s\n\n", rec.Speaker, rec.Role, rec.Content)
		}
		return nil
	}

	ledger, err := memory.NewLedger(cfg.Memory.Path)
	if err != nil {
		return fmt.Errorf("open memory ledger: %w", err)
	}
	orch := orchestrator.New(buildHousehold(cfg, ledger))

	mode := household.ModeStructured
	if strings.EqualFold(task, orchestrator.TaskParlourDiscussion) {
		mode = household.ModeParlour
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	ask := func(input string) {
		reply, err := orch.Run(ctx, task, input, mode)
		if err != nil {
			reply = orchestrator.Apology(err, cfg.Debug)
		}
		fmt.Printf("\n%s:\n%s\n\n", orchestrator.Speaker(task), reply)
	}

	if message != "" {
		ask(message)
		return nil
	}

	fmt.Fprintf(os.Stderr, "Westmarch household, at your service (task: %s)\n", task)
	fmt.Fprintln(os.Stderr, "Type \"exit\" to withdraw.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "\nVery good, sir.")
			return nil
		default:
		}

		fmt.Fprint(os.Stderr, "You: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Fprintln(os.Stderr, "Very good, sir.")
			return nil
		}
		ask(input)
	}
}
