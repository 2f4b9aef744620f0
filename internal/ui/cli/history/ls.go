package history

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/picomenu/picomenu/internal/appState"
	"github.com/picomenu/picomenu/internal/domain"
	"github.com/picomenu/picomenu/internal/repository/sqlite"
)

var limitFlag int

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recent launches",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config
		repo, err := sqlite.Initialize(cfg.DBPath)
		if err != nil {
			return err
		}

		limit := limitFlag
		if limit == 0 {
			limit = cfg.RecentLimit
		}

		records, err := repo.Recent(cmd.Context(), limit)
		if domain.IsNoHistoryError(err) {
			fmt.Println("No launches recorded.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to list launches: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSYSTEM\tLAUNCHED\tPATH")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				rec.Name,
				rec.System,
				rec.LaunchedAt.Format(time.RFC822),
				rec.Path,
			)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Limit the number of launches to show (0 for the configured default)")
	HistoryCmd.AddCommand(listCmd)
}
