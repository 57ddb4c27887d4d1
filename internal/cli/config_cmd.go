package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mxcd/gtlb-api/internal/models"
	"github.com/mxcd/gtlb-api/internal/services"
)

// newConfigCmd creates the `config` command group for stored host entries.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored host configurations",
	}

	cmd.AddCommand(newConfigAddCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigRemoveCmd())

	return cmd
}

// newConfigAddCmd creates the `config add` command.
// Usage: gtlb-api config add <name> --base-url URL [--token TOKEN]
func newConfigAddCmd() *cobra.Command {
	var baseURL, token string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace a host configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				return fmt.Errorf("--base-url is required")
			}

			configService := services.NewConfigService()
			if _, err := configService.Load(); err != nil {
				return err
			}

			if err := configService.AddConfig(models.Config{
				Name:    args[0],
				BaseURL: baseURL,
				Token:   token,
			}); err != nil {
				return err
			}

			fmt.Printf("Saved %q to %s\n", args[0], configService.GetConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "GitLab base URL for this entry")
	cmd.Flags().StringVar(&token, "token", "", "Access token for this entry")

	return cmd
}

// newConfigListCmd creates the `config list` command.
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored host configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configService := services.NewConfigService()
			if _, err := configService.Load(); err != nil {
				return err
			}

			configs := configService.GetConfigs()
			if len(configs) == 0 {
				fmt.Println("No stored configurations.")
				return nil
			}

			for _, c := range configs {
				token := "no token"
				if c.Token != "" {
					token = "token set"
				}
				fmt.Printf("%s\t%s\t(%s)\n", c.Name, c.BaseURL, token)
			}
			return nil
		},
	}
}

// newConfigRemoveCmd creates the `config remove` command.
func newConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a stored host configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configService := services.NewConfigService()
			if _, err := configService.Load(); err != nil {
				return err
			}

			if err := configService.DeleteConfig(args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed %q\n", args[0])
			return nil
		},
	}
}
