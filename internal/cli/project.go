package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newProjectCmd creates the `project` command.
// Usage: gtlb-api project <identifier>
func newProjectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "project <identifier>",
		Short: "Fetch a project by ID, path or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(opts)
			if err != nil {
				return err
			}

			project, err := service.GetProject(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(project)
		},
	}
}

// newBranchesCmd creates the `branches` command.
// Usage: gtlb-api branches <identifier>
func newBranchesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "branches <identifier>",
		Short: "List the branches of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(opts)
			if err != nil {
				return err
			}

			branches, err := service.GetBranches(args[0])
			if err != nil {
				return err
			}

			for _, branch := range branches {
				marker := " "
				if branch.Default {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, branch.Name)
			}
			return nil
		},
	}
}
