package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lakekit/internal/app"
)

type newOptions struct {
	Name string
}

func newNewCommand() *cobra.Command {
	opts := newOptions{}
	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create or reuse a managed project at the given path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewService()
			project, err := service.OpenProject(cmd.Context(), app.OpenRequest{
				Path: args[0],
				Name: opts.Name,
			})
			if err != nil {
				return err
			}
			fmt.Printf("project ready: %s\n", project.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Project name (defaults to the final path segment)")
	return cmd
}
