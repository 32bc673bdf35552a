package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sagarc03/tweeter/config"
	"github.com/sagarc03/tweeter/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe [paths...]",
	Short: "Check a running server",
	Long: `Fetch paths from a running Tweeter server and report the status,
content type and size of each response.

Without paths, every route of the local route table is fetched, together
with one random path that must miss, and each response is compared byte
for byte with the local table. The command fails if any response differs.`,
	Example: `  tweeter probe
  tweeter probe --endpoint http://localhost:8080 / /style.css /nope
  tweeter probe --embedded --json`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().String("endpoint", "", "server URL (default: http://localhost:<server.port>)")
	probeCmd.Flags().Bool("json", false, "output as JSON")
	probeCmd.Flags().BoolP("quiet", "q", false, "only print failures")

	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	endpoint, _ := cmd.Flags().GetString("endpoint")
	if endpoint == "" {
		endpoint = localEndpoint(cfg.Server)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	formatter := probe.NewFormatter(jsonOutput, quiet)
	out := cmd.OutOrStdout()

	client, err := probe.New(&probe.Config{Endpoint: endpoint})
	if err != nil {
		return err
	}

	if len(args) > 0 {
		results, err := client.Check(ctx, args)
		if err != nil {
			return err
		}
		if err := formatter.FormatCheck(out, results); err != nil {
			return err
		}
		for i := range results {
			if results[i].Err != nil {
				return fmt.Errorf("probe: %s: %w", results[i].Path, results[i].Err)
			}
		}
		return nil
	}

	table, err := loadTable(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	verifications, err := client.Verify(ctx, table)
	if err != nil {
		return err
	}
	if err := formatter.FormatVerify(out, verifications); err != nil {
		return err
	}

	failed := 0
	for i := range verifications {
		if !verifications[i].OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("probe: %d of %d path(s) differ from the local route table", failed, len(verifications))
	}

	return nil
}

// localEndpoint is the URL of a server started with the same configuration.
func localEndpoint(cfg config.ServerConfig) string {
	host := cfg.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Port))
}
