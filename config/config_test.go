package config

import (
	"testing"

	"github.com/noodlekit/noodle/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Reset(viper.Reset)

		Convey("Should initialize without a config file", func() {
			err := Setup(afero.NewMemMapFs(), "/etc/noodle")
			So(err, ShouldBeNil)
			So(viper.GetString(key.OutputAs), ShouldEqual, "json")
			So(viper.GetBool(key.LogsWrite), ShouldBeFalse)
		})

		Convey("Should have default values populated", func() {
			So(Setup(afero.NewMemMapFs(), "/etc/noodle"), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should read noodle.yaml", func() {
			fs := afero.NewMemMapFs()
			So(afero.WriteFile(fs, "/etc/noodle/noodle.yaml", []byte("output:\n  as: string\n  indent: true\n"), 0o644), ShouldBeNil)
			So(Setup(fs, "/etc/noodle"), ShouldBeNil)
			So(viper.GetString(key.OutputAs), ShouldEqual, "string")
			So(viper.GetBool(key.OutputIndent), ShouldBeTrue)
		})

		Convey("Should fail on a malformed config file", func() {
			fs := afero.NewMemMapFs()
			So(afero.WriteFile(fs, "/etc/noodle/noodle.yaml", []byte("output: [\n"), 0o644), ShouldBeNil)
			So(Setup(fs, "/etc/noodle"), ShouldNotBeNil)
		})

		Convey("Should prefer environment variables", func() {
			t.Setenv("NOODLE_LOGS_LEVEL", "debug")
			So(Setup(afero.NewMemMapFs(), "/etc/noodle"), ShouldBeNil)
			So(viper.GetString(key.LogsLevel), ShouldEqual, "debug")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("output.indent"), ShouldEqual, "output_indent")
			So(Default[key.OutputIndent].Env(), ShouldEqual, "NOODLE_OUTPUT_INDENT")
		})
	})
}
