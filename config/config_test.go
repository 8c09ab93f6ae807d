package config

import (
	"testing"

	"github.com/ktsu-dev/FileSystemProvider/filesystem"
	"github.com/ktsu-dev/FileSystemProvider/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetDefault(filesystem.New(filesystem.WithEnvironmentProbe(func() bool { return true })))
	_ = filesystem.SetFileSystemFactory(func() afero.Fs { return afero.NewMemMapFs() })
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should declare every schema field", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("The production guard should default to enabled", func() {
			_ = Setup()
			So(viper.GetBool(key.ProviderProductionGuard), ShouldBeTrue)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace(key.ProviderProductionGuard), ShouldEqual, "provider_production_guard")
		})

		Convey("Env should prefix and uppercase field keys", func() {
			field := Default[key.LogsWrite]
			So(field.Env(), ShouldEqual, "FSPROVIDER_LOGS_WRITE")
		})
	})
}
