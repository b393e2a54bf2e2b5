package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/robo/internal/credentials"
	"github.com/Makepad-fr/robo/internal/ui"
)

func authCmd(getEnv envFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the generation API key",
		Args:  withUsage(cobra.NoArgs),
	}
	cmd.AddCommand(authSetCmd(getEnv), authClearCmd(getEnv), authStatusCmd(getEnv))
	return cmd
}

func authSetCmd(getEnv envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "set <api-key|->",
		Short: "Save an API key to the data directory (- reads it from stdin)",
		Args:  withUsage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if key == "-" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return usagef("no key on stdin")
				}
				key = line
			}
			key = strings.TrimSpace(key)
			if key == "" {
				return usagef("empty API key")
			}
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			if err := credentials.Save(env.Config.DataDir, key); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("saved %s to %s", credentials.Mask(key), credentials.Path(env.Config.DataDir)))
			return nil
		},
	}
}

func authClearCmd(getEnv envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the saved API key",
		Args:  withUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			if err := credentials.Delete(env.Config.DataDir); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "saved API key removed")
			return nil
		},
	}
}

func authStatusCmd(getEnv envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the API key comes from",
		Args:  withUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch env.Config.CredentialSource() {
			case "env":
				ui.OK(out, "API key set in the environment: "+credentials.Mask(env.Config.Credential()))
			case "file":
				ui.OK(out, "API key saved in "+credentials.Path(env.Config.DataDir)+": "+credentials.Mask(env.Config.Credential()))
			default:
				ui.Warn(out, "no API key configured. Set ROBO_API_KEY (or GEMINI_API_KEY) or run `robo auth set <key>`.")
			}
			return nil
		},
	}
}
