// Package cli implements the noodle command, which reads values out of JSON documents.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/noodlekit/noodle/config"
	"github.com/noodlekit/noodle/dynjson"
	"github.com/noodlekit/noodle/key"
	"github.com/noodlekit/noodle/log"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the command tree. Documents are read from fs, or from stdin when the
// file argument is "-".
func NewRootCmd(fs afero.Fs, stdin io.Reader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           config.Name,
		Short:         "Read values out of JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Setup(fs, "."); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log.Setup(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("indent", false, "Indent JSON output")
	lo.Must0(viper.BindPFlag(key.OutputIndent, rootCmd.PersistentFlags().Lookup("indent")))

	r := reader{fs: fs, stdin: stdin}
	rootCmd.AddCommand(
		newGetCmd(r),
		newKeysCmd(r),
		newLenCmd(r),
	)
	return rootCmd
}

// Execute runs the noodle command against the real filesystem.
func Execute() {
	rootCmd := NewRootCmd(afero.NewOsFs(), os.Stdin)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "noodle: %v\n", err)
		os.Exit(1)
	}
}

type reader struct {
	fs    afero.Fs
	stdin io.Reader
}

// document reads and parses the file named by args[0] and follows the optional path in
// args[1].
func (r reader) document(args []string) (dynjson.JSON, error) {
	name := args[0]
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(r.stdin)
	} else {
		b, err = afero.ReadFile(r.fs, name)
	}
	if err != nil {
		return dynjson.JSON{}, fmt.Errorf("read %s: %w", name, err)
	}
	doc, err := dynjson.ParseBytes(b)
	if err != nil {
		return dynjson.JSON{}, fmt.Errorf("%s: %w", name, err)
	}
	log.Debugw("parsed document", logrus.Fields{
		"file":  name,
		"bytes": len(b),
		"kind":  doc.Kind().String(),
	})
	if len(args) < 2 {
		return doc, nil
	}
	steps, err := dynjson.ParsePath(args[1])
	if err != nil {
		return dynjson.JSON{}, fmt.Errorf("invalid path %q: %w", args[1], err)
	}
	v := doc.Walk(steps...)
	if v.IsNull() {
		log.Debugf("path %q resolved to null", args[1])
	}
	return v, nil
}
