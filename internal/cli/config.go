package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tharlesamaro/git-ai/internal/config"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the git-ai configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(cfg.Sources) == 0 {
		fmt.Fprintln(out, "# No config files found, showing defaults.")
	}
	for _, src := range cfg.Sources {
		fmt.Fprintf(out, "# Config file: %s\n", src)
	}
	if flagConfig == "" {
		fmt.Fprintf(out, "# Global config location: %s\n", config.GlobalPath())
	}
	fmt.Fprintln(out)
	_, err = out.Write(data)
	return err
}
