package main

import (
	"fmt"

	"github.com/spf13/cobra"

	joplin "github.com/peteraglen/joplin-go-client"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the Joplin Data API is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := joplin.NewAPIClient(settings, joplin.WithRequestLogger(joplin.NewZerologLogger(logger)))
		if err != nil {
			return err
		}

		if !api.CheckConnection(cmd.Context()) {
			return fmt.Errorf("%w at %s", joplin.ErrServiceUnavailable, settings.BaseURL())
		}

		fmt.Printf("%s is reachable\n", settings.BaseURL())

		return nil
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Ask Joplin for an API token and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token = ""

		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(c.Token())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(authCmd)
}
