package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	var (
		page           int
		perPage        int
		requestContext string
		search         string
		filters        []string
	)

	cmd := &cobra.Command{
		Use:   "get <resource> [id]",
		Short: "Fetch resources",
		Long: `Fetch a resource collection or a single item.

Examples:
  wp get posts
  wp get posts --page 2 --per-page 20
  wp get posts/42
  wp get users --context edit`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}

			path := args[0]
			if len(args) == 2 {
				path = path + "/" + args[1]
			}

			params := &wpapi.ListParams{
				Context: requestContext,
				Page:    page,
				PerPage: perPage,
				Search:  search,
			}

			for _, filter := range filters {
				key, value, found := strings.Cut(filter, "=")
				if !found {
					return fmt.Errorf("invalid filter %q: expected key=value", filter) //nolint:err113 // user input in message
				}

				params.WithFilter(key, value)
			}

			result, err := client.Fetch(cmd.Context(), path, params)
			if err != nil {
				return err
			}

			return renderResult(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page (omitted when unset)")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page length (default 10)")
	cmd.Flags().StringVar(&requestContext, "context", "", "request context (view or edit)")
	cmd.Flags().StringVar(&search, "search", "", "full-text search term")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "additional query parameter (key=value, repeatable)")

	return cmd
}

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	var (
		data           string
		requestContext string
	)

	cmd := &cobra.Command{
		Use:   "create <resource>",
		Short: "Create a resource",
		Long: `Create a resource from a JSON object.

Example:
  wp create posts --data '{"title": "Hello", "status": "draft"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}

			body, err := decodeData(data)
			if err != nil {
				return err
			}

			result, err := client.Create(cmd.Context(), args[0], requestContext, body)
			if err != nil {
				return err
			}

			return renderResult(result)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "resource data as a JSON object")
	cmd.Flags().StringVar(&requestContext, "context", "", "request context (view or edit)")

	return cmd
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	var (
		data           string
		requestContext string
	)

	cmd := &cobra.Command{
		Use:   "update <resource> <id>",
		Short: "Update a resource",
		Long: `Update a resource from a JSON object.

Example:
  wp update posts 42 --data '{"status": "publish"}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}

			body, err := decodeData(data)
			if err != nil {
				return err
			}

			result, err := client.Update(cmd.Context(), args[0]+"/"+args[1], requestContext, body)
			if err != nil {
				return err
			}

			return renderResult(result)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "resource data as a JSON object")
	cmd.Flags().StringVar(&requestContext, "context", "", "request context (view or edit)")

	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var (
		data           string
		requestContext string
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a resource",
		Long: `Delete a resource.

Example:
  wp delete posts 42 --force`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}

			var body map[string]interface{}

			if data != "" {
				body, err = decodeData(data)
				if err != nil {
					return err
				}
			}

			if force {
				if body == nil {
					body = map[string]interface{}{}
				}

				body["force"] = true
			}

			if _, err := client.Delete(cmd.Context(), args[0]+"/"+args[1], requestContext, body); err != nil {
				return err
			}

			cmd.Printf("Deleted %s/%s\n", args[0], args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "additional request data as a JSON object")
	cmd.Flags().StringVar(&requestContext, "context", "", "request context (view or edit)")
	cmd.Flags().BoolVar(&force, "force", false, "bypass trash and delete permanently")

	return cmd
}
