package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lakekit/internal/app"
)

type runOptions struct {
	Path        string
	Imports     []string
	Code        string
	File        string
	Interpreter string
	Timeout     time.Duration
}

func newRunCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a source snippet inside the project environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code := opts.Code
			if opts.File != "" {
				data, err := os.ReadFile(opts.File)
				if err != nil {
					return err
				}
				code = string(data)
			}

			service := app.NewService()
			project, err := service.OpenProject(cmd.Context(), app.OpenRequest{Path: opts.Path})
			if err != nil {
				return err
			}
			result, err := service.RunSnippet(cmd.Context(), project, app.RunRequest{
				Imports:     opts.Imports,
				Code:        code,
				Interpreter: opts.Interpreter,
				Timeout:     opts.Timeout,
			})
			if err != nil {
				return err
			}
			fmt.Print(result.Stdout)
			if result.Stderr != "" {
				fmt.Fprint(os.Stderr, result.Stderr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Path, "path", ".", "Project directory")
	cmd.Flags().StringSliceVar(&opts.Imports, "import", nil, "Module to import before the snippet (repeatable)")
	cmd.Flags().StringVar(&opts.Code, "code", "", "Snippet source text")
	cmd.Flags().StringVar(&opts.File, "file", "", "Read the snippet from a file instead of --code")
	cmd.Flags().StringVar(&opts.Interpreter, "interpreter", "lean", "Interpreter passed to the toolchain env command")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "Execution timeout")
	return cmd
}
