package cli

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Authenticate and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c := newAPIClient()
	if err := c.Login(cmd.Context(), args[0], string(raw)); err != nil {
		return err
	}

	viper.Set("token", c.Token())
	if err := viper.WriteConfigAs(configPath()); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Printf("Logged in as %s\n", args[0])
	return nil
}
