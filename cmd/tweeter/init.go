package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sagarc03/tweeter/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file interactively",
	Long: `Prompt for the server port, the public directory and the log
format, then write them as a YAML config file that serve, routes and
probe read with --config.

Current values (defaults, environment, flags) are offered as defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("output", "o", "config.yaml", "config file to write")
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing file without asking")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}
	out := *cfg

	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if _, statErr := os.Stat(output); statErr == nil && !force {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", output),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(out.Server.Port),
		Validate: func(input string) error {
			port, convErr := strconv.Atoi(input)
			if convErr != nil {
				return errors.New("port must be a number")
			}
			if port < 1 || port > 65535 {
				return errors.New("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(cmd, err)
	}
	out.Server.Port, _ = strconv.Atoi(portStr)

	embeddedPrompt := promptui.Prompt{
		Label:     "Serve the resources compiled into the binary",
		IsConfirm: true,
	}
	_, embeddedErr := embeddedPrompt.Run()
	if errors.Is(embeddedErr, promptui.ErrInterrupt) {
		return handlePromptError(cmd, embeddedErr)
	}
	out.Storage.Embedded = embeddedErr == nil

	if !out.Storage.Embedded {
		dirPrompt := promptui.Prompt{
			Label:   "Public directory",
			Default: out.Storage.Path,
			Validate: func(input string) error {
				if input == "" {
					return errors.New("public directory is required")
				}
				return nil
			},
		}
		out.Storage.Path, err = dirPrompt.Run()
		if err != nil {
			return handlePromptError(cmd, err)
		}
	}

	formatSelect := promptui.Select{
		Label: "Log format",
		Items: []string{"text", "json"},
	}
	if out.Log.Format == "json" {
		formatSelect.CursorPos = 1
	}
	_, out.Log.Format, err = formatSelect.Run()
	if err != nil {
		return handlePromptError(cmd, err)
	}

	if err := config.Save(output, &out); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s.\n", output)
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(cmd *cobra.Command, err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	return err
}
