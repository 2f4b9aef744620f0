// Package configcmd prints the merged configuration for debugging a device.
package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/picomenu/picomenu/internal/appState"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}
