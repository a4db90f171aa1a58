package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/vtm-api/internal/handlers/api/v1alpha1"
)

var (
	combatName     string
	entryValue     int
	entryModifier  int
	entryNPC       bool
	entryCharacter string
)

var initiativeCmd = &cobra.Command{
	Use:   "initiative",
	Short: "Run combat initiative",
	Long: `Run a session's combat. Examples:

  initiative start --session game-night
  initiative add <order-id> Theo --modifier 6
  initiative roll <order-id>
  initiative next <order-id>
  initiative end <order-id>`,
}

var initiativeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start combat for --session",
	RunE:  initiativeStart,
}

var initiativeAddCmd = &cobra.Command{
	Use:   "add [order-id] [name]",
	Short: "Add a combatant",
	Args:  cobra.ExactArgs(2),
	RunE:  initiativeAdd,
}

var initiativeRemoveCmd = &cobra.Command{
	Use:   "remove [order-id] [entry-id]",
	Short: "Remove a combatant",
	Args:  cobra.ExactArgs(2),
	RunE:  initiativeRemove,
}

var initiativeRollCmd = &cobra.Command{
	Use:   "roll [order-id]",
	Short: "Roll initiative for everyone",
	Args:  cobra.ExactArgs(1),
	RunE:  initiativeRoll,
}

var initiativeNextCmd = &cobra.Command{
	Use:   "next [order-id]",
	Short: "End the current turn",
	Args:  cobra.ExactArgs(1),
	RunE:  initiativeNext,
}

var initiativeEndCmd = &cobra.Command{
	Use:   "end [order-id]",
	Short: "End combat",
	Args:  cobra.ExactArgs(1),
	RunE:  initiativeEnd,
}

var initiativeShowCmd = &cobra.Command{
	Use:   "show [order-id]",
	Short: "Show an order, or the active one for --session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  initiativeShow,
}

func init() {
	initiativeStartCmd.Flags().StringVar(&combatName, "name", "", "Combat name")

	initiativeAddCmd.Flags().IntVar(&entryValue, "value", -1, "Fixed initiative; negative waits for a roll")
	initiativeAddCmd.Flags().IntVar(&entryModifier, "modifier", 0, "Initiative modifier")
	initiativeAddCmd.Flags().BoolVar(&entryNPC, "npc", false, "Storyteller character")
	initiativeAddCmd.Flags().StringVar(&entryCharacter, "character-id", "", "Linked character")

	initiativeCmd.AddCommand(initiativeStartCmd)
	initiativeCmd.AddCommand(initiativeAddCmd)
	initiativeCmd.AddCommand(initiativeRemoveCmd)
	initiativeCmd.AddCommand(initiativeRollCmd)
	initiativeCmd.AddCommand(initiativeNextCmd)
	initiativeCmd.AddCommand(initiativeEndCmd)
	initiativeCmd.AddCommand(initiativeShowCmd)
}

func withInitiative(call func(context.Context, v1alpha1.InitiativeServiceClient) error) error {
	client, cleanup, err := createInitiativeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return call(ctx, client)
}

func initiativeStart(cmd *cobra.Command, args []string) error {
	if sessionID == "" {
		return fmt.Errorf("--session is required")
	}
	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		resp, err := client.StartCombat(ctx, &v1alpha1.StartCombatRequest{SessionID: sessionID, Name: combatName})
		if err != nil {
			return fmt.Errorf("failed to start combat: %w", err)
		}
		return printOrder(resp.View, resp)
	})
}

func initiativeAdd(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.AddCombatantRequest{
		OrderID:            args[0],
		CharacterID:        entryCharacter,
		Name:               args[1],
		InitiativeModifier: entryModifier,
		IsNPC:              entryNPC,
	}
	if entryValue >= 0 {
		value := entryValue
		req.InitiativeValue = &value
	}

	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		resp, err := client.AddCombatant(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add combatant: %w", err)
		}
		return printOrder(resp.View, resp)
	})
}

func initiativeRemove(cmd *cobra.Command, args []string) error {
	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		resp, err := client.RemoveCombatant(ctx, &v1alpha1.RemoveCombatantRequest{OrderID: args[0], EntryID: args[1]})
		if err != nil {
			return fmt.Errorf("failed to remove combatant: %w", err)
		}
		return printOrder(resp.View, resp)
	})
}

func initiativeRoll(cmd *cobra.Command, args []string) error {
	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		resp, err := client.RollInitiative(ctx, &v1alpha1.OrderRequest{OrderID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to roll initiative: %w", err)
		}
		if !asJSON {
			for _, r := range resp.Rolls {
				fmt.Printf("  %s rolled %d -> %d\n", r.EntryID, r.Face, r.Value)
			}
		}
		return printOrder(resp.View, resp)
	})
}

func initiativeNext(cmd *cobra.Command, args []string) error {
	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		resp, err := client.AdvanceTurn(ctx, &v1alpha1.OrderRequest{OrderID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to advance turn: %w", err)
		}
		if resp.NewRound && !asJSON {
			fmt.Println("New round!")
		}
		return printOrder(resp.View, resp)
	})
}

func initiativeEnd(cmd *cobra.Command, args []string) error {
	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		resp, err := client.EndCombat(ctx, &v1alpha1.OrderRequest{OrderID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to end combat: %w", err)
		}
		return printOrder(resp.View, resp)
	})
}

func initiativeShow(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && sessionID == "" {
		return fmt.Errorf("an order ID or --session is required")
	}
	return withInitiative(func(ctx context.Context, client v1alpha1.InitiativeServiceClient) error {
		var (
			resp *v1alpha1.OrderResponse
			err  error
		)
		if len(args) == 1 {
			resp, err = client.GetOrder(ctx, &v1alpha1.OrderRequest{OrderID: args[0]})
		} else {
			resp, err = client.GetActiveOrder(ctx, &v1alpha1.GetActiveOrderRequest{SessionID: sessionID})
		}
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}
		return printOrder(resp.View, resp)
	})
}

func printOrder(view *v1alpha1.OrderView, resp any) error {
	if done, err := printJSON(resp); done {
		return err
	}
	if view == nil || view.Order == nil {
		return nil
	}

	o := view.Order
	state := "active"
	if !o.Active {
		state = "ended"
	}
	fmt.Printf("\n%s [%s] %s, round %d\n", o.Name, o.ID, state, o.CurrentRound)
	for _, e := range view.TurnOrder {
		marker := " "
		if view.Current != nil && view.Current.ID == e.ID {
			marker = ">"
		}
		acted := ""
		if e.HasActed {
			acted = " (acted)"
		}
		fmt.Printf(" %s %3d  %-20s %s%s\n", marker, e.InitiativeValue, e.Name, e.ID, acted)
	}
	return nil
}
