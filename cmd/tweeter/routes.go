package main

import (
	"github.com/spf13/cobra"

	"github.com/sagarc03/tweeter/config"
	"github.com/sagarc03/tweeter/probe"
)

// fallbackPath labels the fallback entry in the route listing.
const fallbackPath = "*"

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table",
	Long: `Build the route table from the configured resources and print
each exact path with its status, content type and size. The last row,
"*", is the entry served for every other path.`,
	Args: cobra.NoArgs,
	RunE: runRoutes,
}

func init() {
	routesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	table, err := loadTable(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}

	routes := table.Routes()
	rows := make([]probe.Result, 0, len(routes)+1)
	for _, route := range routes {
		rows = append(rows, probe.Result{
			Path:        route.Path,
			Status:      route.Status,
			ContentType: route.ContentType,
			Size:        int64(len(route.Content)),
		})
	}

	fallback := table.Fallback()
	rows = append(rows, probe.Result{
		Path:        fallbackPath,
		Status:      fallback.Status,
		ContentType: fallback.ContentType,
		Size:        int64(len(fallback.Content)),
	})

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return probe.NewFormatter(jsonOutput, false).FormatCheck(cmd.OutOrStdout(), rows)
}
