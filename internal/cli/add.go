package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lakekit/internal/app"
	"lakekit/internal/core"
)

type addOptions struct {
	Path  string
	Cache bool
}

func newAddCommand() *cobra.Command {
	opts := addOptions{}
	cmd := &cobra.Command{
		Use:   "add <scope>/<name>[@version]",
		Short: "Declare and install a dependency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dep, err := core.ParseIdentifier(args[0])
			if err != nil {
				return err
			}
			dep.Cache = opts.Cache

			service := app.NewService()
			project, err := service.OpenProject(cmd.Context(), app.OpenRequest{Path: opts.Path})
			if err != nil {
				return err
			}
			if err := service.InstallDependency(cmd.Context(), project, dep); err != nil {
				return err
			}
			fmt.Printf("installed: %s\n", dep.Identifier())
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Path, "path", ".", "Project directory")
	cmd.Flags().BoolVar(&opts.Cache, "cache", false, "Prefetch build cache after install (best-effort)")
	return cmd
}
