package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/document"
)

func fmtCmd(c *cli) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Normalize a document",
		Long: `Rewrite a document in canonical form: two-space indentation,
single text children collapsed to a string, empty fields dropped.

Examples:
  htmlc fmt page.json
  htmlc fmt -w page.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.readDocument(args)
			if err != nil {
				return err
			}
			data, err := document.Encode(n)
			if err != nil {
				return err
			}

			if !write || len(args) == 0 || args[0] == "-" {
				_, err := c.stdout.Write(data)
				return err
			}

			old, err := os.ReadFile(args[0])
			if err == nil && bytes.Equal(old, data) {
				return nil
			}
			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return errors.New(errors.CodeSinkWrite).WithDetail(args[0]).Wrap(err)
			}
			c.success("Formatted %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to the source file")

	return cmd
}
