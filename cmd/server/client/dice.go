package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/vtm-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

var (
	v5Pool          int
	v5Hunger        int
	v5Difficulty    int
	v5Surge         bool
	v5BloodPotency  int
	wpRating        int
	wpDifficulty    int
	remorseHumanity int
	remorseStains   int
	v20Pool         int
	v20Difficulty   int
	v20Specialty    bool
	v20Willpower    bool
	soakStamina     int
	soakFortitude   int
	soakDamage      string
	historyLimit    int
)

var rollV5Cmd = &cobra.Command{
	Use:   "roll-v5",
	Short: "Roll a V5 pool with Hunger dice",
	Long: `Roll a V5 dice pool. Hunger dice replace regular dice. Examples:

  roll-v5 --pool 6 --hunger 2 --difficulty 3
  roll-v5 --pool 4 --hunger 1 --chronicle night-one --character theo`,
	RunE: rollV5,
}

var willpowerCmd = &cobra.Command{
	Use:   "willpower",
	Short: "Roll Willpower alone",
	RunE:  rollWillpower,
}

var remorseCmd = &cobra.Command{
	Use:   "remorse",
	Short: "Roll an end-of-session remorse check",
	RunE:  rollRemorse,
}

var rollV20Cmd = &cobra.Command{
	Use:   "roll-v20",
	Short: "Roll a V20 pool against a difficulty",
	Long: `Roll a V20 dice pool. Examples:

  roll-v20 --pool 5 --difficulty 7
  roll-v20 --pool 4 --specialty --spend-willpower`,
	RunE: rollV20,
}

var soakCmd = &cobra.Command{
	Use:   "soak",
	Short: "Roll V20 soak",
	RunE:  rollSoak,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a chronicle's recent rolls",
	RunE:  listHistory,
}

func init() {
	rollV5Cmd.Flags().IntVar(&v5Pool, "pool", 1, "Dice pool")
	rollV5Cmd.Flags().IntVar(&v5Hunger, "hunger", 0, "Hunger")
	rollV5Cmd.Flags().BoolVar(&v5Surge, "blood-surge", false, "Add Blood Surge dice")
	rollV5Cmd.Flags().IntVar(&v5BloodPotency, "blood-potency", 1, "Blood Potency for --blood-surge")
	rollV5Cmd.Flags().IntVar(&v5Difficulty, "difficulty", 1, "Successes needed; 0 for an opposed roll")

	willpowerCmd.Flags().IntVar(&wpRating, "willpower", 1, "Willpower rating")
	willpowerCmd.Flags().IntVar(&wpDifficulty, "difficulty", 1, "Successes needed")

	remorseCmd.Flags().IntVar(&remorseHumanity, "humanity", 7, "Humanity")
	remorseCmd.Flags().IntVar(&remorseStains, "stains", 0, "Stains this session")

	rollV20Cmd.Flags().IntVar(&v20Pool, "pool", 1, "Dice pool")
	rollV20Cmd.Flags().IntVar(&v20Difficulty, "difficulty", v20.DefaultDifficulty, "Target number per die")
	rollV20Cmd.Flags().BoolVar(&v20Specialty, "specialty", false, "Reroll tens")
	rollV20Cmd.Flags().BoolVar(&v20Willpower, "spend-willpower", false, "Add one automatic success")

	soakCmd.Flags().IntVar(&soakStamina, "stamina", 2, "Stamina")
	soakCmd.Flags().IntVar(&soakFortitude, "fortitude", 0, "Fortitude")
	soakCmd.Flags().StringVar(&soakDamage, "damage", "bashing", "bashing, lethal or aggravated")

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Rolls to list")
}

func rollV5(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollV5(ctx, &v1alpha1.RollV5Request{
		Context:      rollContext(),
		Pool:         v5Pool,
		Hunger:       v5Hunger,
		Difficulty:   &v5Difficulty,
		BloodSurge:   v5Surge,
		BloodPotency: v5BloodPotency,
	})
	if err != nil {
		return fmt.Errorf("failed to roll: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}

	printV5Roll(resp.Result)
	printRollID(resp.RollID)
	return nil
}

func rollWillpower(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.WillpowerRoll(ctx, &v1alpha1.WillpowerRollRequest{
		Context:    rollContext(),
		Willpower:  wpRating,
		Difficulty: &wpDifficulty,
	})
	if err != nil {
		return fmt.Errorf("failed to roll willpower: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}

	printV5Roll(resp.Result)
	printRollID(resp.RollID)
	return nil
}

func rollRemorse(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RemorseCheck(ctx, &v1alpha1.RemorseCheckRequest{
		Context:  rollContext(),
		Humanity: remorseHumanity,
		Stains:   remorseStains,
	})
	if err != nil {
		return fmt.Errorf("failed to roll remorse: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}

	if resp.Result.Success {
		fmt.Println("Remorse check passed: Stains clear, Humanity holds")
	} else {
		fmt.Println("Remorse check failed: Humanity drops by one")
	}
	if resp.Result.Roll != nil {
		printV5Roll(resp.Result.Roll)
	}
	printRollID(resp.RollID)
	return nil
}

func rollV20(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollV20(ctx, &v1alpha1.RollV20Request{
		Context:    rollContext(),
		Pool:       v20Pool,
		Difficulty: v20Difficulty,
		Specialty:  v20Specialty,
		Willpower:  v20Willpower,
	})
	if err != nil {
		return fmt.Errorf("failed to roll: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}

	r := resp.Result
	fmt.Printf("\nV20 Roll (difficulty %d):\n", r.Difficulty)
	fmt.Printf("  Dice: %v\n", r.Dice)
	if len(r.SpecialtyRerolls) > 0 {
		fmt.Printf("  Specialty rerolls: %v\n", r.SpecialtyRerolls)
	}
	fmt.Printf("  Successes: %d\n", r.Successes)
	fmt.Printf("  Result: %s\n", r.Result)
	printRollID(resp.RollID)
	return nil
}

func rollSoak(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SoakV20(ctx, &v1alpha1.SoakV20Request{
		Context:    rollContext(),
		Stamina:    soakStamina,
		Fortitude:  soakFortitude,
		DamageType: soakDamage,
	})
	if err != nil {
		return fmt.Errorf("failed to soak: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}

	r := resp.Result
	fmt.Printf("\nSoak against %s damage:\n", soakDamage)
	if !r.CanSoak {
		fmt.Println("  Cannot be soaked without Fortitude")
	} else {
		if r.Roll != nil {
			fmt.Printf("  Dice: %v\n", r.Roll.Dice)
		}
		fmt.Printf("  Levels soaked: %d\n", r.DamageSoaked)
	}
	printRollID(resp.RollID)
	return nil
}

func listHistory(cmd *cobra.Command, args []string) error {
	if chronicleID == "" {
		return fmt.Errorf("--chronicle is required")
	}

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListRolls(ctx, &v1alpha1.ListRollsRequest{
		ChronicleID:   chronicleID,
		Limit:         historyLimit,
		IncludeSecret: secret,
	})
	if err != nil {
		return fmt.Errorf("failed to list rolls: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}

	fmt.Printf("\nRolls in %s (newest first):\n", chronicleID)
	for _, roll := range resp.Rolls {
		fmt.Printf("  %s  %-4s %-14s %-16s %d successes", roll.CreatedAt.Format("2006-01-02 15:04"), roll.System, roll.Kind, roll.Result, roll.Successes)
		if roll.Description != "" {
			fmt.Printf("  (%s)", roll.Description)
		}
		fmt.Println()
	}
	return nil
}

func printV5Roll(r *v5.RollResult) {
	fmt.Printf("\nV5 Roll (difficulty %d):\n", r.Difficulty)
	fmt.Printf("  Regular dice: %v\n", r.RegularDice)
	fmt.Printf("  Hunger dice:  %v\n", r.HungerDice)
	fmt.Printf("  Successes: %d (margin %d)\n", r.Successes, r.Margin)
	fmt.Printf("  Result: %s\n", r.Result)
}
