package cmd

import (
	"os"
	"strings"

	"github.com/ktsu-dev/FileSystemProvider/color"
	"github.com/ktsu-dev/FileSystemProvider/config"
	"github.com/ktsu-dev/FileSystemProvider/constant"
	"github.com/ktsu-dev/FileSystemProvider/filesystem"
	"github.com/ktsu-dev/FileSystemProvider/style"
	"github.com/ktsu-dev/FileSystemProvider/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long: `Display the collection of supported environment variables and their current process values,
including the deployment detection variables consulted by the production guard.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(config.EnvExposed, func(key string, _ int) string {
			return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(key))
		})
		names = append(names,
			where.EnvConfigPath,
			constant.EnvDeploymentEnvironment,
			constant.EnvRuntimeEnvironment,
			constant.EnvEnvironment,
		)
		slices.Sort(names)

		for _, env := range names {
			value := os.Getenv(env)
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}

		if filesystem.NonProduction() {
			cmd.Println(style.Fg(color.Green)("Detected environment: non-production (test mode permitted)"))
		} else {
			cmd.Println(style.Fg(color.Yellow)("Detected environment: production (test mode guarded)"))
		}
	},
}
