package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newBranchExistsCmd creates the `branch-exists` command.
// Usage: gtlb-api branch-exists <project-id> <branch>
func newBranchExistsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "branch-exists <project-id> <branch>",
		Short: "Check whether a branch exists",
		Long:  `Exits 0 and prints "yes" when the branch exists, exits 1 and prints "no" when it does not.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}

			service, err := newService(opts)
			if err != nil {
				return err
			}

			exists, err := service.BranchExists(projectID, args[1])
			if err != nil {
				return err
			}

			return printExists(exists)
		},
	}
}

// newFileExistsCmd creates the `file-exists` command.
// Usage: gtlb-api file-exists <project-id> <branch> <path>
func newFileExistsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "file-exists <project-id> <branch> <path>",
		Short: "Check whether a file exists on a branch",
		Long:  `Exits 0 and prints "yes" when the file exists, exits 1 and prints "no" when it does not.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}

			service, err := newService(opts)
			if err != nil {
				return err
			}

			exists, err := service.FileExists(projectID, args[1], args[2])
			if err != nil {
				return err
			}

			return printExists(exists)
		},
	}
}

func printExists(exists bool) error {
	if exists {
		fmt.Println("yes")
		return nil
	}
	fmt.Println("no")
	return fmt.Errorf("not found")
}
