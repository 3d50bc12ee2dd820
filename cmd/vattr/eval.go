package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/reactive"
)

func evalCmd(a *app) *cobra.Command {
	var (
		name  string
		value string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Format a single attribute",
		Long: `Format a single attribute the way it is written into HTML.

The value is JSON: a string is written as name="value", true as the
bare name, and false or null not at all. Numbers are written in decimal.

Examples:
  vattr eval --name id --json '"main"'
  vattr eval --name disabled --json true
  vattr eval --name width --json 1.5 --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("E400").WithDetail("--name is required")
			}

			cx := reactive.NewScope(nil).WithContext(cmd.Context())
			defer cx.Dispose()

			v, err := jsonAttribute(cx, []byte(value))
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated attribute", "name", name, "attribute", v.String())

			out := cmd.OutOrStdout()
			if debug {
				fmt.Fprintln(out, v.String())
			}
			fmt.Fprintln(out, v.AsValueString(name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Attribute name")
	cmd.Flags().StringVar(&value, "json", "null", "Attribute value as JSON")
	cmd.Flags().BoolVar(&debug, "debug", false, "Also print the debug form of the attribute")

	return cmd
}
