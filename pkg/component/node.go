package component

import (
	"io"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// Sentinels for errors.Is. Errors returned by this package carry more
// detail but match these by code.
var (
	ErrInvalidElementName error = errors.New(errors.CodeInvalidElementName)
	ErrInvalidAttribute   error = errors.New(errors.CodeInvalidAttribute)
	ErrSharedNode         error = errors.New(errors.CodeSharedNode)
)

// Node is content that compiles to markup: either Text or *Element.
type Node interface {
	// Compile returns the markup for the node. Extra attribute pairs are
	// merged into an *Element before rendering; Text ignores them.
	Compile(extra ...string) (string, error)

	node()
}

// Text is a raw string leaf. It is emitted verbatim: no escaping is applied,
// so literal markup can be interleaved with generated elements.
type Text string

// Compile returns the text unchanged.
func (t Text) Compile(...string) (string, error) { return string(t), nil }

// String returns the text unchanged.
func (t Text) String() string { return string(t) }

func (Text) node() {}

// Print compiles n and writes the result to w.
func Print(w io.Writer, n Node, extra ...string) error {
	out, err := n.Compile(extra...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Echo is an alias for Print.
func Echo(w io.Writer, n Node, extra ...string) error {
	return Print(w, n, extra...)
}
