package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:   "breathsafe",
	Short: "Command line client for a BreathSafe server",
	Long: `Manage community sensor requests and alert subscriptions against a
BreathSafe air quality server. Run "breathsafe login" first; the token is
kept in the config file for later commands.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("server", "http://localhost:1080", "base URL of the BreathSafe server")
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".breathsafe.yaml"
	}
	return filepath.Join(home, ".breathsafe.yaml")
}

func initConfig() {
	viper.SetConfigName(".breathsafe")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("BREATHSAFE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// missing config file just means nobody logged in yet
	_ = viper.ReadInConfig()
}

// newAPIClient builds a client from the configured server, carrying the
// stored token when one exists.
func newAPIClient() *client.Client {
	c := client.NewClient(viper.GetString("server"))
	if token := viper.GetString("token"); token != "" {
		c.SetToken(token)
	}
	return c
}

// requireToken fails fast for commands that need a login.
func requireToken() error {
	if viper.GetString("token") == "" {
		return fmt.Errorf("not logged in, run \"breathsafe login\" first")
	}
	return nil
}
