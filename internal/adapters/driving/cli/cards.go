package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

var cardsNote string

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage the operator's task cards",
	Long: `View and edit the task card checklist.

Labels that match an active card are flagged during overlay
composition and carry the card's note on the annotation line.

Without a subcommand, lists the cards.`,
	RunE: runCardsList,
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List task cards",
	RunE:  runCardsList,
}

var cardsAddCmd = &cobra.Command{
	Use:   "add [item]",
	Short: "Add a task card",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsAdd,
}

var cardsDoneCmd = &cobra.Command{
	Use:   "done [item or id]",
	Short: "Mark a task card as done",
	Long: `Deactivate the card matching the given item or id. Done cards are
kept in the configuration but no longer flag labels.`,
	Args: cobra.ExactArgs(1),
	RunE: runCardsDone,
}

func init() {
	cardsAddCmd.Flags().StringVar(&cardsNote, "note", "", "annotation shown on the overlay line")
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsDoneCmd)
	rootCmd.AddCommand(cardsCmd)
}

func runCardsList(cmd *cobra.Command, _ []string) error {
	if taskCardService == nil {
		return errors.New("task card service not configured")
	}

	cards, err := taskCardService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list task cards: %w", err)
	}
	if len(cards) == 0 {
		cmd.Println("No task cards configured.")
		return nil
	}

	cmd.Println("Task cards:")
	cmd.Println()
	for i := range cards {
		card := &cards[i]
		state := "active"
		if !card.Active {
			state = "done"
		}
		cmd.Printf("  [%s] %s\n", state, card.Item)
		if card.Note != "" {
			cmd.Printf("      note: %s\n", card.Note)
		}
		cmd.Printf("      id:   %s\n", card.ID)
	}
	return nil
}

func runCardsAdd(cmd *cobra.Command, args []string) error {
	if taskCardService == nil {
		return errors.New("task card service not configured")
	}

	card := domain.TaskCard{Item: args[0], Note: cardsNote, Active: true}
	if err := taskCardService.Add(cmd.Context(), card); err != nil {
		return fmt.Errorf("add task card: %w", err)
	}

	cmd.Printf("Added task card: %s\n", card.Item)
	return nil
}

func runCardsDone(cmd *cobra.Command, args []string) error {
	if taskCardService == nil {
		return errors.New("task card service not configured")
	}

	card, err := taskCardService.Complete(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("complete task card: %w", err)
	}

	cmd.Printf("Marked done: %s\n", card.Item)
	return nil
}
