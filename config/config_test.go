package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/filesystem"
	"github.com/tinge-cli/tinge/key"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

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

		Convey("Should register every defined field", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("generate.variant")
			So(result, ShouldEqual, "generate_variant")
		})

		Convey("Field Env should carry the application prefix", func() {
			field := Default[key.GenerateVariant]
			So(field.Env(), ShouldEqual, "TINGE_GENERATE_VARIANT")
		})
	})
}
