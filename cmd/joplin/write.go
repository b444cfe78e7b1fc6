package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	joplin "github.com/peteraglen/joplin-go-client"
)

var (
	createTitle string
	createJSON  string
	permanent   bool
)

var createCmd = &cobra.Command{
	Use:   "create <type>",
	Short: "Create an item from a title or a JSON object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data any

		switch {
		case createJSON != "" && createTitle != "":
			return errors.New("use either --title or --json")
		case createJSON != "":
			var record joplin.Record
			if err := json.Unmarshal([]byte(createJSON), &record); err != nil {
				return fmt.Errorf("invalid --json: %w", err)
			}
			data = record
		case createTitle != "":
			data = createTitle
		default:
			return errors.New("one of --title or --json is required")
		}

		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		it, err := item(c, args[0])
		if err != nil {
			return err
		}

		resp, err := it.Create(cmd.Context(), data)
		if err != nil {
			return err
		}

		return printResponse(resp)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <type> <id>",
	Short: "Move an item to the trash, or delete it with --permanent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		it, err := item(c, args[0])
		if err != nil {
			return err
		}

		resp, err := it.Delete(cmd.Context(), args[1], !permanent)
		if err != nil {
			return err
		}

		return printResponse(resp)
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Attach tags to notes or detach them",
}

var tagAttachCmd = &cobra.Command{
	Use:   "attach <tagID> <noteID>",
	Short: "Attach a tag to a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := c.Tags().AttachToNote(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		return printResponse(resp)
	},
}

var tagDetachCmd = &cobra.Command{
	Use:   "detach <tagID> <noteID>",
	Short: "Detach a tag from a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := c.Tags().DetachFromNote(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		return printResponse(resp)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAttachCmd)
	tagCmd.AddCommand(tagDetachCmd)

	createCmd.Flags().StringVar(&createTitle, "title", "", "Title, for items that can be created from a title alone")
	createCmd.Flags().StringVar(&createJSON, "json", "", "JSON object with the item fields")
	deleteCmd.Flags().BoolVar(&permanent, "permanent", false, "Delete permanently instead of moving to the trash")
}
