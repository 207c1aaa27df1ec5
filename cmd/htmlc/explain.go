package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

func explainCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code",
		Long: `Describe an error code, or list all codes when none is given.

Examples:
  htmlc explain
  htmlc explain C020`,
		Args: cobra.MaximumNArgs(1),
		// No configuration needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				codes := errors.GetAllCodes()
				sort.Strings(codes)
				for _, code := range codes {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(c.stdout, "%s  %-10s %s\n", code, t.Category, t.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			t, ok := errors.GetTemplate(code)
			if !ok {
				return errors.Newf(errors.CategoryCLI, "unknown error code %q", args[0]).
					WithSuggestion("Run 'htmlc explain' to list all codes")
			}
			fmt.Fprintf(c.stdout, "%s: %s\n", code, t.Message)
			fmt.Fprintf(c.stdout, "  Category: %s\n", t.Category)
			if t.Suggestion != "" {
				fmt.Fprintf(c.stdout, "  Hint:     %s\n", t.Suggestion)
			}
			if t.DocURL != "" {
				fmt.Fprintf(c.stdout, "  Docs:     %s\n", t.DocURL)
			}
			return nil
		},
	}
	return cmd
}
