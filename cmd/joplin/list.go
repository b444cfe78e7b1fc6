package main

import (
	"github.com/spf13/cobra"
)

var searchType string

var listCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List all items of a type (notes, tags, folders, resources, revisions, events)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		it, err := item(c, args[0])
		if err != nil {
			return err
		}

		result, err := it.List(cmd.Context(), listOptions())
		if err != nil {
			return err
		}

		return printResult(result)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items with the Joplin search syntax",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		it, err := item(c, searchType)
		if err != nil {
			return err
		}

		result, err := it.Search(cmd.Context(), args[0], listOptions())
		if err != nil {
			return err
		}

		return printResult(result)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <type> <id>",
	Short: "Print a single item",
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

		resp, err := it.Get(cmd.Context(), args[1], fields...)
		if err != nil {
			return err
		}

		return printResponse(resp)
	},
}

var noteTagsCmd = &cobra.Command{
	Use:   "note-tags <noteID>",
	Short: "List the tags attached to a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}

		result, err := c.Notes().Tags(cmd.Context(), args[0], verbose)
		if err != nil {
			return err
		}

		return printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(noteTagsCmd)

	addListFlags(listCmd)
	addListFlags(searchCmd)
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "note", "Item type to search")
	getCmd.Flags().StringSliceVar(&fields, "fields", nil, "Fields to return, comma separated")
}
