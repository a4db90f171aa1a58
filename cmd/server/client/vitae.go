package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/vtm-api/internal/handlers/api/v1alpha1"
)

var (
	rouseBloodPotency int
	rouseHunger       int
	rouseCount        int

	frenzyWillpower  int
	frenzyHumanity   int
	frenzyTrigger    string
	frenzyHunger     int
	frenzyBrujah     bool
	frenzyDifficulty int
	frenzyRide       bool

	hungerCurrent      int
	hungerAmount       int
	hungerBloodPotency int
	hungerAnimal       bool
	hungerBagged       bool
	hungerKill         bool

	bloodCurrent    int
	bloodAmount     int
	bloodGeneration int
	bloodMaxPool    int
	bloodDamage     string
	bloodAttribute  string
)

var rouseCmd = &cobra.Command{
	Use:   "rouse",
	Short: "Make one or more Rouse Checks",
	RunE:  rouse,
}

var frenzyCmd = &cobra.Command{
	Use:   "frenzy",
	Short: "Resist frenzy",
	Long: `Resist frenzy. With --trigger the difficulty follows the trigger, Hunger
and clan; without it a plain check at --difficulty is rolled. Examples:

  frenzy --willpower 4 --humanity 7 --trigger fire_touching --hunger 3
  frenzy --willpower 4 --humanity 7 --ride-the-wave`,
	RunE: frenzy,
}

var hungerCmd = &cobra.Command{
	Use:   "hunger",
	Short: "Move the Hunger track",
}

var hungerIncreaseCmd = &cobra.Command{
	Use:   "increase",
	Short: "Raise Hunger",
	RunE:  hungerIncrease,
}

var hungerFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Lower Hunger by feeding",
	RunE:  hungerFeed,
}

var hungerSlakeCmd = &cobra.Command{
	Use:   "slake",
	Short: "Drain a vessel",
	RunE:  hungerSlake,
}

var bloodPotencyCmd = &cobra.Command{
	Use:   "blood-potency [level]",
	Short: "Show the Blood Potency table or one level",
	Args:  cobra.MaximumNArgs(1),
	RunE:  bloodPotency,
}

var bloodCmd = &cobra.Command{
	Use:   "blood",
	Short: "Spend and gain from the V20 Blood Pool",
}

var bloodSpendCmd = &cobra.Command{
	Use:   "spend",
	Short: "Spend blood points",
	RunE:  bloodSpend,
}

var bloodGainCmd = &cobra.Command{
	Use:   "gain",
	Short: "Gain blood points",
	RunE:  bloodGain,
}

var bloodHealCmd = &cobra.Command{
	Use:   "heal",
	Short: "Spend blood to heal",
	RunE:  bloodHeal,
}

var bloodBoostCmd = &cobra.Command{
	Use:   "boost",
	Short: "Spend blood to raise a Physical attribute",
	RunE:  bloodBoost,
}

func init() {
	rouseCmd.Flags().IntVar(&rouseBloodPotency, "blood-potency", 1, "Blood Potency")
	rouseCmd.Flags().IntVar(&rouseHunger, "hunger", 1, "Current Hunger")
	rouseCmd.Flags().IntVar(&rouseCount, "count", 1, "Checks in a row")

	frenzyCmd.Flags().IntVar(&frenzyWillpower, "willpower", 3, "Willpower")
	frenzyCmd.Flags().IntVar(&frenzyHumanity, "humanity", 7, "Humanity")
	frenzyCmd.Flags().StringVar(&frenzyTrigger, "trigger", "", "Frenzy trigger, e.g. smell_of_blood")
	frenzyCmd.Flags().IntVar(&frenzyHunger, "hunger", 1, "Current Hunger")
	frenzyCmd.Flags().BoolVar(&frenzyBrujah, "brujah", false, "Brujah clan bane")
	frenzyCmd.Flags().IntVar(&frenzyDifficulty, "difficulty", 0, "Difficulty for a plain check; 0 follows Hunger")
	frenzyCmd.Flags().BoolVar(&frenzyRide, "ride-the-wave", false, "Ride the wave instead of resisting")

	for _, c := range []*cobra.Command{hungerIncreaseCmd, hungerFeedCmd, hungerSlakeCmd} {
		c.Flags().IntVar(&hungerCurrent, "current", 1, "Current Hunger")
		c.Flags().IntVar(&hungerBloodPotency, "blood-potency", 1, "Blood Potency")
		hungerCmd.AddCommand(c)
	}
	hungerIncreaseCmd.Flags().IntVar(&hungerAmount, "amount", 1, "Hunger gained")
	hungerFeedCmd.Flags().IntVar(&hungerAmount, "amount", 1, "Hunger slaked")
	hungerFeedCmd.Flags().BoolVar(&hungerAnimal, "animal", false, "Feeding on an animal")
	hungerFeedCmd.Flags().BoolVar(&hungerBagged, "bagged", false, "Feeding on bagged blood")
	hungerSlakeCmd.Flags().BoolVar(&hungerKill, "kill", false, "Drain the vessel to death")

	for _, c := range []*cobra.Command{bloodSpendCmd, bloodGainCmd, bloodHealCmd, bloodBoostCmd} {
		c.Flags().IntVar(&bloodCurrent, "current", 10, "Current Blood Pool")
		c.Flags().IntVar(&bloodAmount, "amount", 1, "Points or levels")
		c.Flags().IntVar(&bloodGeneration, "generation", 13, "Generation")
		bloodCmd.AddCommand(c)
	}
	bloodSpendCmd.Flags().IntVar(&bloodMaxPool, "max-pool", 0, "Pool size; 0 uses the generation's")
	bloodGainCmd.Flags().IntVar(&bloodMaxPool, "max-pool", 0, "Pool size; 0 uses the generation's")
	bloodHealCmd.Flags().StringVar(&bloodDamage, "damage", "bashing", "bashing, lethal or aggravated")
	bloodBoostCmd.Flags().StringVar(&bloodAttribute, "attribute", "strength", "strength, dexterity or stamina")
}

func rouse(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if rouseCount > 1 {
		resp, err := client.MultipleRouseChecks(ctx, &v1alpha1.MultipleRouseChecksRequest{
			Context:      rollContext(),
			Count:        rouseCount,
			BloodPotency: rouseBloodPotency,
			Hunger:       rouseHunger,
		})
		if err != nil {
			return fmt.Errorf("failed to rouse: %w", err)
		}
		if done, err := printJSON(resp); done {
			return err
		}
		for i, r := range resp.Results {
			fmt.Printf("  Check %d: %v  %s\n", i+1, r.Dice, r.Message)
		}
		fmt.Printf("Hunger is now %d\n", resp.FinalHunger)
		printRollID(resp.RollID)
		return nil
	}

	resp, err := client.RouseCheck(ctx, &v1alpha1.RouseCheckRequest{
		Context:      rollContext(),
		BloodPotency: rouseBloodPotency,
		Hunger:       rouseHunger,
	})
	if err != nil {
		return fmt.Errorf("failed to rouse: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}
	fmt.Printf("  Dice: %v  %s\n", resp.Result.Dice, resp.Result.Message)
	fmt.Printf("Hunger is now %d\n", resp.NewHunger)
	printRollID(resp.RollID)
	return nil
}

func frenzy(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch {
	case frenzyRide:
		resp, err := client.RideTheWave(ctx, &v1alpha1.RideTheWaveRequest{
			Context:   rollContext(),
			Willpower: frenzyWillpower,
			Humanity:  frenzyHumanity,
		})
		if err != nil {
			return fmt.Errorf("failed to ride the wave: %w", err)
		}
		return printFrenzyRoll(resp)

	case frenzyTrigger != "":
		resp, err := client.ResistFrenzy(ctx, &v1alpha1.ResistFrenzyRequest{
			Context:   rollContext(),
			Willpower: frenzyWillpower,
			Humanity:  frenzyHumanity,
			Trigger:   frenzyTrigger,
			Hunger:    frenzyHunger,
			Brujah:    frenzyBrujah,
		})
		if err != nil {
			return fmt.Errorf("failed to resist frenzy: %w", err)
		}
		if done, err := printJSON(resp); done {
			return err
		}
		r := resp.Result
		fmt.Printf("\n%s frenzy, difficulty %d\n", r.Type, r.Difficulty)
		if r.Roll != nil {
			printV5Roll(r.Roll)
		}
		fmt.Println(r.Message)
		printRollID(resp.RollID)
		return nil

	default:
		resp, err := client.FrenzyCheck(ctx, &v1alpha1.FrenzyCheckRequest{
			Context:    rollContext(),
			Willpower:  frenzyWillpower,
			Humanity:   frenzyHumanity,
			Hunger:     frenzyHunger,
			Difficulty: frenzyDifficulty,
		})
		if err != nil {
			return fmt.Errorf("failed to check frenzy: %w", err)
		}
		return printFrenzyRoll(resp)
	}
}

func printFrenzyRoll(resp *v1alpha1.FrenzyRollResponse) error {
	if done, err := printJSON(resp); done {
		return err
	}
	if resp.Roll != nil {
		printV5Roll(resp.Roll)
	}
	if resp.Success {
		fmt.Println("The Beast is held")
	} else {
		fmt.Println("The Beast takes over")
	}
	printRollID(resp.RollID)
	return nil
}

func hungerIncrease(cmd *cobra.Command, args []string) error {
	return callHunger(func(ctx context.Context, client v1alpha1.VitaeServiceClient) (*v1alpha1.HungerResponse, error) {
		return client.IncreaseHunger(ctx, &v1alpha1.IncreaseHungerRequest{Current: hungerCurrent, Amount: hungerAmount})
	})
}

func hungerFeed(cmd *cobra.Command, args []string) error {
	return callHunger(func(ctx context.Context, client v1alpha1.VitaeServiceClient) (*v1alpha1.HungerResponse, error) {
		return client.DecreaseHunger(ctx, &v1alpha1.DecreaseHungerRequest{
			Current:      hungerCurrent,
			Amount:       hungerAmount,
			BloodPotency: hungerBloodPotency,
			Animal:       hungerAnimal,
			Bagged:       hungerBagged,
		})
	})
}

func hungerSlake(cmd *cobra.Command, args []string) error {
	return callHunger(func(ctx context.Context, client v1alpha1.VitaeServiceClient) (*v1alpha1.HungerResponse, error) {
		return client.SlakeHunger(ctx, &v1alpha1.SlakeHungerRequest{
			Current:      hungerCurrent,
			Kill:         hungerKill,
			BloodPotency: hungerBloodPotency,
		})
	})
}

func callHunger(call func(context.Context, v1alpha1.VitaeServiceClient) (*v1alpha1.HungerResponse, error)) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := call(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to change hunger: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}
	fmt.Printf("Hunger %d -> %d: %s\n", resp.Change.Old, resp.Change.New, resp.Change.Message)
	return nil
}

func bloodPotency(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if len(args) == 1 {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}
		resp, err := client.GetBloodPotency(ctx, &v1alpha1.GetBloodPotencyRequest{Level: level})
		if err != nil {
			return fmt.Errorf("failed to get blood potency: %w", err)
		}
		if done, err := printJSON(resp); done {
			return err
		}
		fmt.Printf("Blood Potency %d: surge +%d, mend %d, power bonus +%d, bane %d\n",
			resp.BloodPotency.Level, resp.BloodPotency.BloodSurge, resp.BloodPotency.MendAmount,
			resp.BloodPotency.PowerBonus, resp.BloodPotency.BaneSeverity)
		fmt.Printf("  Feeding: %s\n", resp.BloodPotency.FeedingPenalty)
		fmt.Printf("  Animals: %v  Blood bags: %v  Rouse reroll: %v\n",
			resp.CanFeedOnAnimals, resp.CanUseBloodBags, resp.CanRerollRouse)
		return nil
	}

	resp, err := client.ListBloodPotency(ctx, &v1alpha1.ListBloodPotencyRequest{})
	if err != nil {
		return fmt.Errorf("failed to list blood potency: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}
	fmt.Println("BP  Surge  Mend  Bonus  Reroll  Bane  Feeding")
	for _, bp := range resp.Levels {
		fmt.Printf("%2d  %5d  %4d  %5d  %6d  %4d  %s\n",
			bp.Level, bp.BloodSurge, bp.MendAmount, bp.PowerBonus, bp.RouseReroll, bp.BaneSeverity, bp.FeedingPenalty)
	}
	return nil
}

func bloodSpend(cmd *cobra.Command, args []string) error {
	return callBloodPool(func(ctx context.Context, client v1alpha1.VitaeServiceClient, req *v1alpha1.BloodPoolRequest) (*v1alpha1.BloodPoolResponse, error) {
		return client.SpendBlood(ctx, req)
	})
}

func bloodGain(cmd *cobra.Command, args []string) error {
	return callBloodPool(func(ctx context.Context, client v1alpha1.VitaeServiceClient, req *v1alpha1.BloodPoolRequest) (*v1alpha1.BloodPoolResponse, error) {
		return client.GainBlood(ctx, req)
	})
}

func callBloodPool(call func(context.Context, v1alpha1.VitaeServiceClient, *v1alpha1.BloodPoolRequest) (*v1alpha1.BloodPoolResponse, error)) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := call(ctx, client, &v1alpha1.BloodPoolRequest{
		Current:    bloodCurrent,
		Amount:     bloodAmount,
		Generation: bloodGeneration,
		MaxPool:    bloodMaxPool,
	})
	if err != nil {
		return fmt.Errorf("failed to change blood pool: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}
	fmt.Printf("Blood Pool %d -> %d of %d: %s\n", resp.Change.Old, resp.Change.New, resp.Change.Max, resp.Change.Message)
	return nil
}

func bloodHeal(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.HealDamage(ctx, &v1alpha1.HealDamageRequest{
		CurrentPool: bloodCurrent,
		DamageType:  bloodDamage,
		Amount:      bloodAmount,
		Generation:  bloodGeneration,
	})
	if err != nil {
		return fmt.Errorf("failed to heal: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}
	fmt.Printf("%s (healed %d for %d blood)\n", resp.Result.Message, resp.Result.Healed, resp.Result.Cost)
	return nil
}

func bloodBoost(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createVitaeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.BoostAttribute(ctx, &v1alpha1.BoostAttributeRequest{
		CurrentPool: bloodCurrent,
		Attribute:   bloodAttribute,
		Amount:      bloodAmount,
		Generation:  bloodGeneration,
	})
	if err != nil {
		return fmt.Errorf("failed to boost: %w", err)
	}
	if done, err := printJSON(resp); done {
		return err
	}
	fmt.Printf("%s (+%d for %d blood)\n", resp.Result.Message, resp.Result.Boost, resp.Result.Cost)
	return nil
}
