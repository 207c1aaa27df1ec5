package el

import (
	"fmt"

	"github.com/vango-dev/htmlcomponent/pkg/component"
)

// Attr is a "key value" attribute pair passed as a Tag argument.
type Attr string

// Option adjusts an element while it is being built.
type Option func(*component.Element)

// Role sets the role attribute.
func Role(role string) Option {
	return func(e *component.Element) { e.Role(role) }
}

// Extends renders the element as tag with an is attribute.
func Extends(tag string) Option {
	return func(e *component.Element) { e.Extends(tag) }
}

// Void omits the end tag.
func Void() Option {
	return func(e *component.Element) { e.OmitEndTag() }
}

// Text creates a raw text node. Nothing is escaped.
func Text(s string) component.Text {
	return component.Text(s)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) component.Text {
	return component.Text(fmt.Sprintf(format, args...))
}

// If returns node when cond holds, nil otherwise. Nil arguments are skipped
// by Tag.
func If(cond bool, node component.Node) component.Node {
	if cond {
		return node
	}
	return nil
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) component.Node) []component.Node {
	nodes := make([]component.Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
