// Package cmd implements the command-line interface for fsprovider.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ktsu-dev/FileSystemProvider/color"
	"github.com/ktsu-dev/FileSystemProvider/constant"
	"github.com/ktsu-dev/FileSystemProvider/filesystem"
	"github.com/ktsu-dev/FileSystemProvider/key"
	"github.com/ktsu-dev/FileSystemProvider/log"
	"github.com/ktsu-dev/FileSystemProvider/style"
	"github.com/ktsu-dev/FileSystemProvider/util"
	"github.com/ktsu-dev/FileSystemProvider/version"
	"github.com/ktsu-dev/FileSystemProvider/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		util.Ignore(func() error {
			fs, err := filesystem.Current(context.Background())
			if err != nil {
				return err
			}
			return fs.RemoveAll(where.Temp())
		})
	}()
}

// rootCmd defines the entry point for the fsprovider application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Inspect the swappable filesystem provider runtime",
	Long: constant.App + "\n" +
		style.Italic("    - Inspect the swappable filesystem provider runtime and its environment"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		fs, err := filesystem.Current(context.Background())
		handleErr(err)

		mode := "default"
		if filesystem.IsInTestMode() {
			mode = "test"
		}

		environment := "production"
		if filesystem.NonProduction() {
			environment = "non-production"
		}

		label := style.New().Bold(true).Foreground(color.HiPurple).Render
		cmd.Printf("%s %s\n", label("Mode:"), mode)
		cmd.Printf("%s %s\n", label("Backend:"), fs.Name())
		cmd.Printf("%s %s\n", label("Environment:"), environment)
		cmd.Printf("%s %t\n", label("Production guard:"), viper.GetBool(key.ProviderProductionGuard))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
