package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lakekit/internal/app"
)

type cloneOptions struct {
	Name string
}

func newCloneCommand() *cobra.Command {
	opts := cloneOptions{}
	cmd := &cobra.Command{
		Use:   "clone <source> <destination>",
		Short: "Copy a managed project to a new directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewService()
			project, err := service.OpenProject(cmd.Context(), app.OpenRequest{Path: args[0]})
			if err != nil {
				return err
			}
			cloned, err := service.CloneProject(cmd.Context(), project, args[1], opts.Name)
			if err != nil {
				return err
			}
			fmt.Printf("cloned to: %s\n", cloned.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Name for the cloned project")
	return cmd
}
