package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/controller"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Review community sensor requests",
}

var adminPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show the pending request queue",
	RunE:  runAdminPending,
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a request and assign an available sensor",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminApprove,
}

var adminRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a request",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminReject,
}

func init() {
	adminPendingCmd.Flags().String("search", "", "narrow the queue by location, requester or justification")

	adminApproveCmd.Flags().Uint("sensor", 0, "id of the sensor to assign")
	adminApproveCmd.Flags().String("comments", "", "optional comments for the requester")
	_ = adminApproveCmd.MarkFlagRequired("sensor")

	adminRejectCmd.Flags().String("comments", "", "reason shown to the requester")
	_ = adminRejectCmd.MarkFlagRequired("comments")

	adminCmd.AddCommand(adminPendingCmd)
	adminCmd.AddCommand(adminApproveCmd)
	adminCmd.AddCommand(adminRejectCmd)
	rootCmd.AddCommand(adminCmd)
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

func loadedAdminReview(cmd *cobra.Command) (*controller.AdminReview, error) {
	if err := requireToken(); err != nil {
		return nil, err
	}
	ar := controller.NewAdminReview(newAPIClient())
	if err := ar.LoadPending(cmd.Context()); err != nil {
		return nil, err
	}
	return ar, nil
}

func runAdminPending(cmd *cobra.Command, args []string) error {
	ar, err := loadedAdminReview(cmd)
	if err != nil {
		return err
	}
	defer ar.Close()

	query, _ := cmd.Flags().GetString("search")
	queue := ar.Search(query)

	if len(queue) == 0 {
		fmt.Println("No pending requests")
		return nil
	}

	for _, r := range queue {
		fmt.Printf("[%d] %s by %s\n", r.ID, r.RequestedLocation, r.RequesterName)
		fmt.Printf("    %s\n\n", r.Justification)
	}

	sensors := ar.AvailableSensors()
	fmt.Printf("%d sensors available for assignment:\n", len(sensors))
	for _, s := range sensors {
		fmt.Printf("  [%d] %s\n", s.ID, s.Name)
	}
	return nil
}

func runAdminApprove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	sensorID, _ := cmd.Flags().GetUint("sensor")
	comments, _ := cmd.Flags().GetString("comments")

	ar, err := loadedAdminReview(cmd)
	if err != nil {
		return err
	}
	defer ar.Close()

	approved, err := ar.Approve(cmd.Context(), id, sensorID, comments)
	if err != nil {
		return err
	}

	fmt.Printf("Request %d approved, sensor %d will be installed at %s\n", approved.ID, sensorID, approved.RequestedLocation)
	return nil
}

func runAdminReject(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	comments, _ := cmd.Flags().GetString("comments")

	ar, err := loadedAdminReview(cmd)
	if err != nil {
		return err
	}
	defer ar.Close()

	if _, err := ar.Reject(cmd.Context(), id, comments); err != nil {
		return err
	}

	fmt.Printf("Request %d rejected\n", id)
	return nil
}
