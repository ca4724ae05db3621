package cli

import (
	"github.com/spf13/cobra"

	"github.com/invectorlabs/bomsort/internal/fsops"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect bomsort configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration, including the derived feeder pattern.

The feeder width table is listed for reference; slot allocation treats every
feeder as one position wide.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(fsops.NewRealFS())
		if err != nil {
			return err
		}

		effective := cfg.Effective()
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), effective)
		}
		data, err := effective.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print which config file is in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, err := loadConfig(fsops.NewRealFS())
		if err != nil {
			return err
		}
		if path == "" {
			path = "(built-in defaults)"
		}
		_, err = cmd.OutOrStdout().Write([]byte(path + "\n"))
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
