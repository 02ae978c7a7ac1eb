package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/client"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/controller"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "Manage your community sensor requests",
}

var requestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your requests",
	RunE:  runRequestsList,
}

var requestsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new sensor placement request",
	RunE:  runRequestsCreate,
}

var requestsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a pending request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsEdit,
}

var requestsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Withdraw a pending request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsDelete,
}

var requestsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one request in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsShow,
}

func init() {
	requestsListCmd.Flags().String("status", "", "filter by status (PENDING, APPROVED, REJECTED)")

	requestsCreateCmd.Flags().String("location", "", "requested location name")
	requestsCreateCmd.Flags().Float64("lat", 0, "latitude")
	requestsCreateCmd.Flags().Float64("lng", 0, "longitude")
	requestsCreateCmd.Flags().String("justification", "", "why this location needs a sensor (30 to 150 characters)")
	_ = requestsCreateCmd.MarkFlagRequired("location")
	_ = requestsCreateCmd.MarkFlagRequired("lat")
	_ = requestsCreateCmd.MarkFlagRequired("lng")
	_ = requestsCreateCmd.MarkFlagRequired("justification")

	requestsEditCmd.Flags().String("location", "", "new location name")
	requestsEditCmd.Flags().Float64("lat", 0, "new latitude")
	requestsEditCmd.Flags().Float64("lng", 0, "new longitude")
	requestsEditCmd.Flags().String("justification", "", "new justification")

	requestsDeleteCmd.Flags().Bool("yes", false, "confirm the deletion")

	requestsCmd.AddCommand(requestsListCmd)
	requestsCmd.AddCommand(requestsCreateCmd)
	requestsCmd.AddCommand(requestsEditCmd)
	requestsCmd.AddCommand(requestsDeleteCmd)
	requestsCmd.AddCommand(requestsShowCmd)
	rootCmd.AddCommand(requestsCmd)
}

func loadedRequestList(cmd *cobra.Command) (*controller.RequestList, error) {
	if err := requireToken(); err != nil {
		return nil, err
	}
	rl := controller.NewRequestList(newAPIClient())
	if err := rl.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return rl, nil
}

func printRequest(r models.CommunityRequest) {
	fmt.Printf("[%d] %s (%s)\n", r.ID, r.RequestedLocation, r.Status)
	fmt.Printf("    Coordinates: %s\n", client.FormatCoordinates(r.Latitude, r.Longitude))
	fmt.Printf("    Justification: %s\n", r.Justification)
	switch r.Status {
	case models.RequestStatusApproved:
		fmt.Printf("    Approved by %s, sensor %s\n", r.ApprovedByName, r.SensorName)
	case models.RequestStatusRejected:
		fmt.Printf("    Rejected: %s\n", r.AdminComments)
	}
	fmt.Println()
}

func runRequestsList(cmd *cobra.Command, args []string) error {
	rl, err := loadedRequestList(cmd)
	if err != nil {
		return err
	}
	defer rl.Close()

	status, _ := cmd.Flags().GetString("status")
	requests := rl.Requests()
	if status != "" {
		requests = rl.FilterByStatus(models.RequestStatus(status))
	}

	if len(requests) == 0 {
		fmt.Println("No requests")
		return nil
	}
	for _, r := range requests {
		printRequest(r)
	}
	return nil
}

func runRequestsCreate(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	location, _ := cmd.Flags().GetString("location")
	lat, _ := cmd.Flags().GetFloat64("lat")
	lng, _ := cmd.Flags().GetFloat64("lng")
	justification, _ := cmd.Flags().GetString("justification")

	rl := controller.NewRequestList(newAPIClient())
	defer rl.Close()

	created, err := rl.Create(cmd.Context(), lifecycle.CreateInput{
		RequestedLocation: location,
		Latitude:          &lat,
		Longitude:         &lng,
		Justification:     justification,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Request %d submitted for review\n", created.ID)
	return nil
}

func runRequestsEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	rl, err := loadedRequestList(cmd)
	if err != nil {
		return err
	}
	defer rl.Close()

	var patch lifecycle.Patch
	if cmd.Flags().Changed("location") {
		v, _ := cmd.Flags().GetString("location")
		patch.RequestedLocation = &v
	}
	if cmd.Flags().Changed("lat") {
		v, _ := cmd.Flags().GetFloat64("lat")
		patch.Latitude = &v
	}
	if cmd.Flags().Changed("lng") {
		v, _ := cmd.Flags().GetFloat64("lng")
		patch.Longitude = &v
	}
	if cmd.Flags().Changed("justification") {
		v, _ := cmd.Flags().GetString("justification")
		patch.Justification = &v
	}

	updated, err := rl.Edit(cmd.Context(), id, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Request %d updated\n", updated.ID)
	return nil
}

func runRequestsShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	rl, err := loadedRequestList(cmd)
	if err != nil {
		return err
	}
	defer rl.Close()

	r, err := rl.View(id)
	if err != nil {
		return err
	}

	printRequest(r)
	fmt.Printf("    Submitted: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	if r.ApprovedAt != nil {
		fmt.Printf("    Approved:  %s\n", r.ApprovedAt.Format("2006-01-02 15:04:05"))
	}
	if r.RejectedAt != nil {
		fmt.Printf("    Rejected:  %s\n", r.RejectedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runRequestsDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		return fmt.Errorf("deleting a request cannot be undone, re-run with --yes to confirm")
	}

	rl, err := loadedRequestList(cmd)
	if err != nil {
		return err
	}
	defer rl.Close()

	if err := rl.Delete(cmd.Context(), id, confirmed); err != nil {
		return err
	}

	fmt.Printf("Request %d deleted\n", id)
	return nil
}
