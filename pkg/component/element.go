package component

import (
	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// Element is a markup element: a tag with attributes and ordered children.
//
// Setters mutate the element in place and return it for chaining. A setter
// that receives invalid input records the error on the element instead of
// returning it; the first such error is reported by Err and by Compile.
type Element struct {
	name       string
	extends    string
	role       string
	omitEndTag bool
	attrs      Attributes
	children   []Node
	parent     *Element
	err        error
}

// Make creates an element named name with the given "key value" attribute
// pairs and children.
//
// The name is stored as given. Underscores are rendered as hyphens, so
// "my_button" produces <my-button>.
func Make(name string, attrs []string, children ...Node) (*Element, error) {
	if name == "" {
		return nil, errors.New(errors.CodeInvalidElementName).
			WithDetail("element name is empty")
	}
	e := &Element{name: name}
	e.Attr(attrs...).Append(children...)
	if e.err != nil {
		e.release()
		return nil, e.err
	}
	return e, nil
}

// MustMake is like Make but panics on error.
func MustMake(name string, attrs []string, children ...Node) *Element {
	e, err := Make(name, attrs, children...)
	if err != nil {
		panic(err)
	}
	return e
}

// Attr sets attributes from "key value" pairs. The key ends at the first
// space; the rest of the string is the value. Empty strings are ignored.
// Setting an existing key keeps its position.
func (e *Element) Attr(pairs ...string) *Element {
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, err := ParseAttribute(pair)
		if err != nil {
			e.fail(err)
			continue
		}
		e.attrs.Set(key, value)
	}
	return e
}

// SetAttr sets a single attribute without parsing.
func (e *Element) SetAttr(key, value string) *Element {
	if key == "" {
		e.fail(errors.New(errors.CodeInvalidAttribute).WithDetail("attribute key is empty"))
		return e
	}
	e.attrs.Set(key, value)
	return e
}

// Role sets the role attribute, rendered before explicit attributes.
func (e *Element) Role(role string) *Element {
	e.role = role
	return e
}

// Extends marks the element as a customized built-in: it renders as the
// extended tag carrying an is="name" attribute.
func (e *Element) Extends(tag string) *Element {
	e.extends = tag
	return e
}

// OmitEndTag controls whether the closing tag is rendered. Called without
// arguments it omits the end tag.
func (e *Element) OmitEndTag(omit ...bool) *Element {
	e.omitEndTag = len(omit) == 0 || omit[0]
	return e
}

// Append attaches children in order. Nil children are skipped. An element
// that already has a parent, or that would become its own ancestor, is
// rejected with ErrSharedNode and none of the children are attached.
func (e *Element) Append(children ...Node) *Element {
	seen := make(map[*Element]bool)
	for _, c := range children {
		child, ok := c.(*Element)
		if !ok || child == nil {
			continue
		}
		if err := e.canAdopt(child); err != nil {
			e.fail(err)
			return e
		}
		if seen[child] {
			e.fail(errors.New(errors.CodeSharedNode).
				WithDetailf("<%s> is listed twice among the children of <%s>", child.name, e.name))
			return e
		}
		seen[child] = true
	}

	for _, c := range children {
		switch child := c.(type) {
		case nil:
			continue
		case *Element:
			if child == nil {
				continue
			}
			child.parent = e
			e.children = append(e.children, child)
		default:
			e.children = append(e.children, c)
		}
	}
	return e
}

// canAdopt reports why child cannot be attached to e, if it cannot.
func (e *Element) canAdopt(child *Element) error {
	if child.parent != nil {
		return errors.New(errors.CodeSharedNode).
			WithDetailf("<%s> already belongs to <%s>", child.name, child.parent.name)
	}
	for a := e; a != nil; a = a.parent {
		if a == child {
			return errors.New(errors.CodeSharedNode).
				WithDetailf("<%s> cannot contain itself", child.name)
		}
	}
	return nil
}

// release detaches every child so they can be adopted elsewhere.
func (e *Element) release() {
	for _, c := range e.children {
		if child, ok := c.(*Element); ok {
			child.parent = nil
		}
	}
	e.children = nil
}

func (e *Element) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Err returns the first error recorded by a setter.
func (e *Element) Err() error {
	return e.err
}

// GetElement returns the element name as given to Make, underscores intact.
func (e *Element) GetElement() string {
	return e.name
}

// GetExtends returns the extended tag, or "".
func (e *Element) GetExtends() string {
	return e.extends
}

// GetRole returns the role, or "".
func (e *Element) GetRole() string {
	return e.role
}

// EndTagOmitted reports whether the closing tag is skipped.
func (e *Element) EndTagOmitted() bool {
	return e.omitEndTag
}

// Attributes returns a copy of the explicitly set attributes.
func (e *Element) Attributes() *Attributes {
	return e.attrs.Clone()
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// Parent returns the element this one is attached to, or nil for a root.
// It is informational only and never affects output.
func (e *Element) Parent() *Element {
	return e.parent
}

// IsWebComponent reports whether the element extends a built-in tag.
func (e *Element) IsWebComponent() bool {
	return e.name != "" && e.extends != ""
}

func (*Element) node() {}
