package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/component"
	"github.com/vango-dev/htmlcomponent/pkg/document"
	"github.com/vango-dev/htmlcomponent/pkg/sink"
)

func compileCmd(c *cli) *cobra.Command {
	var (
		output string
		attrs  []string
	)

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a document to HTML",
		Long: `Compile a JSON document to HTML.

The document is read from file, or from stdin when no file is given.
The output target is "-" for stdout, a file path, or s3://bucket/key.

Examples:
  htmlc compile page.json
  htmlc compile page.json -o dist/index.html
  htmlc compile page.json --attr "lang en" --attr "data-build 42"
  cat page.json | htmlc compile -o s3://my-site/index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = c.cfg.Output
			}
			return c.runCompile(cmd, args, output, attrs)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output target (default from htmlc.json)")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, `Extra "key value" attribute for the root element`)

	return cmd
}

func (c *cli) runCompile(cmd *cobra.Command, args []string, output string, attrs []string) error {
	n, err := c.readDocument(args)
	if err != nil {
		return err
	}
	if _, ok := n.(*component.Element); !ok && len(attrs) > 0 {
		return errors.New(errors.CodeInvalidAttribute).
			WithDetail("--attr needs an element at the document root, got text")
	}

	target, err := sink.ParseTarget(output)
	if err != nil {
		return err
	}
	s, name, err := c.openSink(target)
	if err != nil {
		return err
	}

	if err := sink.Print(cmd.Context(), s, name, n, attrs...); err != nil {
		return err
	}
	c.logger.Debug("compiled", "target", target.String())
	if !target.Stdout {
		c.success("Wrote %s", target)
	}
	return nil
}

func (c *cli) readDocument(args []string) (component.Node, error) {
	if len(args) == 0 || args[0] == "-" {
		return document.Decode(c.stdin)
	}
	return document.DecodeFile(args[0])
}

func (c *cli) openSink(t sink.Target) (sink.Sink, string, error) {
	if t.Stdout {
		return sink.NewWriter(c.stdout), "", nil
	}
	return sink.Open(t, nil, sink.S3Options{
		Region:      c.cfg.S3.Region,
		Endpoint:    c.cfg.S3.Endpoint,
		Prefix:      c.cfg.S3.Prefix,
		ContentType: c.cfg.S3.ContentType,
	})
}
