package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mxcd/gtlb-api/internal/models"
	"github.com/mxcd/gtlb-api/internal/services"
)

// version is set at build time via -ldflags.
var version = "dev"

// tokenEnvVars lists the environment variables checked for a GitLab token,
// in priority order.
var tokenEnvVars = []string{
	"GITLAB_TOKEN",
	"GTLB_TOKEN",
}

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	baseURL    string
	token      string
	configName string
	verbose    bool
}

// NewRootCmd creates the top-level `gtlb-api` command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "gtlb-api",
		Short: "gtlb-api — a minimal GitLab API client",
		Long: `gtlb-api talks to the GitLab v4 REST API. Projects may be referenced by
numeric ID, by namespaced path (group/project) or by full project URL.

The target host comes from --base-url or from a named entry managed with
'gtlb-api config'. The access token comes from --token, the GITLAB_TOKEN
environment variable or the named config entry.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "GitLab base URL (e.g. https://gitlab.example.com)")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "GitLab access token")
	root.PersistentFlags().StringVar(&opts.configName, "config", "", "Name of a stored host configuration")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every request before it is sent")

	root.AddCommand(newProjectCmd(opts))
	root.AddCommand(newBranchesCmd(opts))
	root.AddCommand(newBranchExistsCmd(opts))
	root.AddCommand(newFileExistsCmd(opts))
	root.AddCommand(newCommitCmd(opts))
	root.AddCommand(newSnippetCommitCmd(opts))
	root.AddCommand(newRawCmd(opts))
	root.AddCommand(newVersionCmd(opts))
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// tokenFromEnv returns the first GitLab token found in the environment.
func tokenFromEnv() string {
	for _, env := range tokenEnvVars {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// newService builds a GitLab service from flags, environment and the stored
// configuration, in that priority order.
func newService(opts *rootOptions) (services.GitLabServiceInterface, error) {
	baseURL := opts.baseURL
	token := opts.token

	if token == "" {
		token = tokenFromEnv()
	}

	if opts.configName != "" {
		entry, err := loadConfigEntry(opts.configName)
		if err != nil {
			return nil, err
		}
		if baseURL == "" {
			baseURL = entry.BaseURL
		}
		if token == "" {
			token = entry.Token
		}
	}

	if baseURL == "" {
		return nil, fmt.Errorf("no base URL: pass --base-url or --config <name>")
	}
	if token == "" {
		fmt.Fprintf(os.Stderr, "Warning: no access token — only public projects will be reachable.\n")
	}

	return services.NewGitLabService(baseURL, token, opts.verbose), nil
}

// loadConfigEntry loads the named host entry from the config file.
func loadConfigEntry(name string) (*models.Config, error) {
	configService := services.NewConfigService()
	if _, err := configService.Load(); err != nil {
		return nil, err
	}
	return configService.FindConfig(name)
}
