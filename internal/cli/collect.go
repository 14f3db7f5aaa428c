package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"roskit/internal/app"
)

type collectOptions struct {
	Output string
	Report string
}

func newCollectCommand() *cobra.Command {
	opts := collectOptions{}
	cmd := &cobra.Command{
		Use:   "collect WORKSPACE...",
		Short: "Collect system rosdep keys required by layered workspaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Destination file for the key list (default: stdout)")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Optional YAML collection report path")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runCollect(ctx context.Context, cmd *cobra.Command, opts collectOptions, workspaces []string) error {
	service := newAppService()
	result, err := service.Collect(ctx, app.CollectRequest{
		Workspaces: workspaces,
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
		ReportPath: resolveString(cmd, opts.Report, "report", "report"),
	})
	if err != nil {
		return err
	}
	if result.OutputPath != "" {
		fmt.Printf("collected: %d keys -> %s\n", len(result.Keys), result.OutputPath)
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
