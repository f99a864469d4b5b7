package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lakekit/internal/app"
	"lakekit/internal/types"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [path]",
		Short: "Show the project's declared dependency state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			service := app.NewService()
			project, err := service.OpenProject(cmd.Context(), app.OpenRequest{Path: path})
			if err != nil {
				return err
			}

			summary := types.ProjectSummary{
				Name: project.Name,
				Path: project.Path,
			}
			for _, dep := range project.Dependencies {
				summary.Dependencies = append(summary.Dependencies, dep.Identifier())
			}
			out, err := yaml.Marshal(summary)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	return cmd
}
