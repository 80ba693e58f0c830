package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/noodlekit/noodle/dynjson"
	"github.com/noodlekit/noodle/key"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// views are the renderings accepted by get --as.
var views = []string{"json", "string", "number", "int", "bool", "kind"}

func newGetCmd(r reader) *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <file> [path]",
		Short: "Print the value at path",
		Long: "Print the value at path, e.g. user.tags[0] or $['first name'].\n" +
			"Missing values print as the default of the requested view.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := r.document(args)
			if err != nil {
				return err
			}
			out, err := render(v, viper.GetString(key.OutputAs), viper.GetBool(key.OutputIndent))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	getCmd.Flags().String("as", "json", "View to print: json, string, number, int, bool or kind")
	lo.Must0(getCmd.RegisterFlagCompletionFunc("as", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return views, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.OutputAs, getCmd.Flags().Lookup("as")))
	return getCmd
}

func newKeysCmd(r reader) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file> [path]",
		Short: "List the member names of an object in source order, or the indices of an array",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := r.document(args)
			if err != nil {
				return err
			}
			keys := v.Keys()
			if v.Kind() == dynjson.Array {
				keys = lo.Times(v.Len(), strconv.Itoa)
			}
			for _, k := range keys {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLenCmd(r reader) *cobra.Command {
	return &cobra.Command{
		Use:   "len <file> [path]",
		Short: "Print the number of elements of an array or members of an object",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := r.document(args)
			if err != nil {
				return err
			}
			n := v.Len()
			if v.Kind() == dynjson.Object {
				n = len(v.Keys())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}

func render(v dynjson.JSON, view string, indent bool) (string, error) {
	switch view {
	case "json":
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		if indent {
			var buf bytes.Buffer
			if err := json.Indent(&buf, b, "", "  "); err != nil {
				return "", err
			}
			b = buf.Bytes()
		}
		return string(b), nil
	case "string":
		return v.String(), nil
	case "number":
		return strconv.FormatFloat(v.Number(), 'g', -1, 64), nil
	case "int":
		return strconv.FormatInt(v.Int(), 10), nil
	case "bool":
		return strconv.FormatBool(v.Bool()), nil
	case "kind":
		return v.Kind().String(), nil
	}
	return "", fmt.Errorf("unknown view %q, want one of %v", view, views)
}
