package component

import (
	"io"
	"strings"
)

// Compile renders the element and its descendants to markup.
//
// Extra "key value" pairs are merged into the element's attributes first,
// as Attr would, so they persist on the element. A malformed pair is
// returned without touching the element. The walk uses an explicit stack;
// tree depth is not limited by the goroutine stack.
func (e *Element) Compile(extra ...string) (string, error) {
	if err := e.mergeExtra(extra); err != nil {
		return "", err
	}
	var b strings.Builder
	if err := e.compileTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// mergeExtra sets pairs only once all of them parse.
func (e *Element) mergeExtra(pairs []string) error {
	if len(pairs) == 0 || e.err != nil {
		return nil
	}
	parsed := make([]Attribute, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, err := ParseAttribute(pair)
		if err != nil {
			return err
		}
		parsed = append(parsed, Attribute{Key: key, Value: value})
	}
	for _, a := range parsed {
		e.attrs.Set(a.Key, a.Value)
	}
	return nil
}

// String returns Compile() output, or "" if the tree holds an error.
func (e *Element) String() string {
	out, err := e.Compile()
	if err != nil {
		return ""
	}
	return out
}

// Print compiles the element and writes the result to w.
func (e *Element) Print(w io.Writer, extra ...string) error {
	return Print(w, e, extra...)
}

// Echo is an alias for Print.
func (e *Element) Echo(w io.Writer, extra ...string) error {
	return Print(w, e, extra...)
}

type frame struct {
	el   *Element
	next int
}

func (e *Element) compileTo(b *strings.Builder) error {
	if e.err != nil {
		return e.err
	}
	e.writeOpening(b)
	stack := []frame{{el: e}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.el.children) {
			top.el.writeClosing(b)
			stack = stack[:len(stack)-1]
			continue
		}

		child := top.el.children[top.next]
		top.next++

		switch c := child.(type) {
		case Text:
			b.WriteString(string(c))
		case *Element:
			if c.err != nil {
				return c.err
			}
			c.writeOpening(b)
			stack = append(stack, frame{el: c})
		}
	}
	return nil
}

// TagName returns the tag the element renders as.
func (e *Element) TagName() string {
	if e.IsWebComponent() {
		return e.extends
	}
	return hyphenate(e.name)
}

// RenderedAttributes returns the attributes in output order: is, role, then
// the explicit attributes in first-seen order.
func (e *Element) RenderedAttributes() []Attribute {
	attrs := make([]Attribute, 0, e.attrs.Len()+2)
	e.eachAttribute(func(k, v string) {
		attrs = append(attrs, Attribute{Key: k, Value: v})
	})
	return attrs
}

// eachAttribute yields the synthesized is and role pairs, then the explicit
// attributes. An explicit is or role is skipped when the synthesized pair
// is present.
func (e *Element) eachAttribute(fn func(key, value string)) {
	web := e.IsWebComponent()
	if web {
		fn("is", hyphenate(e.name))
	}
	if e.role != "" {
		fn("role", e.role)
	}
	e.attrs.Each(func(k, v string) {
		if (web && k == "is") || (e.role != "" && k == "role") {
			return
		}
		fn(k, v)
	})
}

func (e *Element) writeOpening(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.TagName())
	e.eachAttribute(func(k, v string) {
		b.WriteByte(' ')
		writeAttribute(b, k, v)
	})
	b.WriteByte('>')
}

func (e *Element) writeClosing(b *strings.Builder) {
	if e.omitEndTag {
		return
	}
	b.WriteString("</")
	b.WriteString(e.TagName())
	b.WriteByte('>')
}

// writeAttribute renders key="value", or the bare key when value == key.
// Values are written as-is.
func writeAttribute(b *strings.Builder, key, value string) {
	b.WriteString(key)
	if value != "" && value == key {
		return
	}
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

func hyphenate(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
