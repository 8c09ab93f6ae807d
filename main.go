// Package main is the entry point for the fsprovider application.
package main

import (
	"github.com/ktsu-dev/FileSystemProvider/cmd"
	"github.com/ktsu-dev/FileSystemProvider/config"
	"github.com/ktsu-dev/FileSystemProvider/filesystem"
	"github.com/ktsu-dev/FileSystemProvider/key"
	"github.com/ktsu-dev/FileSystemProvider/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func main() {
	lo.Must0(config.Setup())

	// Rebuild the process-wide provider with the configured guard setting.
	filesystem.SetDefault(filesystem.New(
		filesystem.WithProductionGuard(viper.GetBool(key.ProviderProductionGuard)),
	))

	lo.Must0(log.Setup())

	cmd.Execute()
}
