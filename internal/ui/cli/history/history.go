// Package history exposes the launch history on the command line.
package history

import (
	"github.com/spf13/cobra"
)

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the launch history",
}
