package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lakekit/internal/app"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Verify the toolchain environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := app.NewService()
			report, err := service.Doctor(cmd.Context())
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(report)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
