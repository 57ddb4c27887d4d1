package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRawCmd creates the `raw` command.
// Usage: gtlb-api raw <identifier> <path> [--ref branch]
func newRawCmd(opts *rootOptions) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "raw <identifier> <path>",
		Short: "Print the raw content of a file",
		Long: `Fetches the raw content of a file and writes it to stdout. Without --ref
the project's default branch is looked up first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(opts)
			if err != nil {
				return err
			}

			content, err := service.GetRawFile(args[0], args[1], ref)
			if err != nil {
				return err
			}
			if content == nil {
				return fmt.Errorf("no content for %s", args[1])
			}

			_, err = os.Stdout.Write(content)
			return err
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Branch to read from (default: the project's default branch)")

	return cmd
}
