package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the `version` command, reporting the version of the
// remote GitLab instance (the CLI's own version lives on --version).
func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of the GitLab instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(opts)
			if err != nil {
				return err
			}

			v, err := service.GetVersion()
			if err != nil {
				return err
			}
			if v == nil {
				return fmt.Errorf("instance did not report a version")
			}

			fmt.Printf("%s (revision %s)\n", v.Version, v.Revision)
			return nil
		},
	}
}
