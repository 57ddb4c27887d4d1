package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// newCommitCmd creates the `commit` command.
// Usage: gtlb-api commit <project-id> --file payload.json
func newCommitCmd(opts *rootOptions) *cobra.Command {
	var payloadFile string

	cmd := &cobra.Command{
		Use:   "commit <project-id>",
		Short: "Submit a commit from a JSON payload",
		Long: `Posts a commit payload (branch, commit_message, actions) to the project.
The payload is read from --file, or from stdin when --file is "-". It is
passed through to the API unmodified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}

			payload, err := readPayload(payloadFile)
			if err != nil {
				return err
			}

			service, err := newService(opts)
			if err != nil {
				return err
			}

			created, err := service.PostCommit(projectID, payload)
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("commit was not created (API did not answer 201)")
			}

			fmt.Println("Commit created.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&payloadFile, "file", "f", "-", "Path to the JSON commit payload (\"-\" for stdin)")

	return cmd
}

// newSnippetCommitCmd creates the `snippet-commit` command.
// Usage: gtlb-api snippet-commit <snippet-id> --file payload.json
func newSnippetCommitCmd(opts *rootOptions) *cobra.Command {
	var payloadFile string

	cmd := &cobra.Command{
		Use:   "snippet-commit <snippet-id>",
		Short: "Update a snippet from a JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippetID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid snippet ID %q", args[0])
			}

			payload, err := readPayload(payloadFile)
			if err != nil {
				return err
			}

			service, err := newService(opts)
			if err != nil {
				return err
			}

			created, err := service.PostSnippetCommit(snippetID, payload)
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("snippet was not updated (API did not answer 201)")
			}

			fmt.Println("Snippet updated.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&payloadFile, "file", "f", "-", "Path to the JSON payload (\"-\" for stdin)")

	return cmd
}

// readPayload reads a JSON payload from a file or stdin. It stays a raw
// message so the client forwards it untouched.
func readPayload(path string) (json.RawMessage, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}

	return json.RawMessage(data), nil
}
