package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/controller"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var subsCmd = &cobra.Command{
	Use:     "subscriptions",
	Aliases: []string{"subs"},
	Short:   "Manage your sensor alert subscriptions",
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your subscriptions",
	RunE:  runSubsList,
}

var subsAddCmd = &cobra.Command{
	Use:   "add <sensorId>",
	Short: "Subscribe to a sensor",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsAdd,
}

var subsActiveCmd = &cobra.Command{
	Use:   "active <id> <on|off>",
	Short: "Turn a subscription on or off",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubsActive,
}

var subsEmailCmd = &cobra.Command{
	Use:   "email <id> <on|off>",
	Short: "Toggle email notifications",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubsEmail,
}

var subsThresholdCmd = &cobra.Command{
	Use:   "threshold <id> <value>",
	Short: "Set the AQI alert threshold (0 to 500)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubsThreshold,
}

var subsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Unsubscribe from a sensor",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsRemove,
}

func init() {
	subsAddCmd.Flags().Int("threshold", 100, "AQI alert threshold")
	subsRemoveCmd.Flags().Bool("yes", false, "confirm the unsubscribe")

	subsCmd.AddCommand(subsListCmd)
	subsCmd.AddCommand(subsAddCmd)
	subsCmd.AddCommand(subsActiveCmd)
	subsCmd.AddCommand(subsEmailCmd)
	subsCmd.AddCommand(subsThresholdCmd)
	subsCmd.AddCommand(subsRemoveCmd)
	rootCmd.AddCommand(subsCmd)
}

func loadedSubscriptions(cmd *cobra.Command) (*controller.Subscriptions, error) {
	if err := requireToken(); err != nil {
		return nil, err
	}
	sc := controller.NewSubscriptions(newAPIClient(), 0)
	if err := sc.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return sc, nil
}

func parseOnOff(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", arg)
	}
}

func printSubscription(s models.Subscription) {
	state := "off"
	if s.IsActive {
		state = "on"
	}
	email := "off"
	if s.EmailNotifications {
		email = "on"
	}
	fmt.Printf("[%d] %s (%s)\n", s.ID, s.SensorName, s.SensorLocation)
	fmt.Printf("    active: %s  email: %s  threshold: AQI %d\n\n", state, email, s.AlertThreshold)
}

func runSubsList(cmd *cobra.Command, args []string) error {
	sc, err := loadedSubscriptions(cmd)
	if err != nil {
		return err
	}
	defer sc.Close()

	subs := sc.Subscriptions()
	if len(subs) == 0 {
		fmt.Println("No subscriptions")
		return nil
	}
	for _, s := range subs {
		printSubscription(s)
	}
	return nil
}

func runSubsAdd(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}
	sensorID, err := parseID(args[0])
	if err != nil {
		return err
	}
	threshold, _ := cmd.Flags().GetInt("threshold")

	sub, err := newAPIClient().Subscribe(cmd.Context(), sensorID, threshold)
	if err != nil {
		return err
	}

	fmt.Printf("Subscribed to %s with threshold AQI %d\n", sub.SensorName, sub.AlertThreshold)
	return nil
}

func runSubsActive(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	enabled, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	sc, err := loadedSubscriptions(cmd)
	if err != nil {
		return err
	}
	defer sc.Close()

	if err := sc.SetActive(cmd.Context(), id, enabled); err != nil {
		return err
	}
	fmt.Printf("Subscription %d is now %s\n", id, args[1])
	return nil
}

func runSubsEmail(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	enabled, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	sc, err := loadedSubscriptions(cmd)
	if err != nil {
		return err
	}
	defer sc.Close()

	if err := sc.SetEmailNotifications(cmd.Context(), id, enabled); err != nil {
		return err
	}
	fmt.Printf("Email notifications for subscription %d are now %s\n", id, args[1])
	return nil
}

func runSubsThreshold(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid threshold %q", args[1])
	}

	sc, err := loadedSubscriptions(cmd)
	if err != nil {
		return err
	}

	if err := sc.SetAlertThreshold(id, value); err != nil {
		sc.Close()
		return err
	}
	// a one-shot command does not wait out the debounce window
	sc.Flush()
	sc.Close()

	fmt.Printf("Threshold for subscription %d set to AQI %d\n", id, models.ClampAlertThreshold(value))
	return nil
}

func runSubsRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		return fmt.Errorf("unsubscribing drops your alert settings, re-run with --yes to confirm")
	}

	sc, err := loadedSubscriptions(cmd)
	if err != nil {
		return err
	}
	defer sc.Close()

	if err := sc.Unsubscribe(cmd.Context(), id, confirmed); err != nil {
		return err
	}
	fmt.Printf("Unsubscribed from %d\n", id)
	return nil
}
