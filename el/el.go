package el

import (
	"fmt"

	"github.com/vango-dev/htmlcomponent/pkg/component"
)

// voidElements are rendered without an end tag by Tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether Tag omits the end tag for name.
func IsVoidElement(name string) bool {
	return voidElements[name]
}

// Tag builds an element named name from args. Arguments can be:
// nil, Attr, []Attr, Option, string (text), component.Node,
// []component.Node or []*component.Element. Any other value is added as
// text using fmt.Sprint.
//
// Tag panics if name is empty. Attribute and ownership errors are recorded
// on the element and reported by Compile.
func Tag(name string, args ...any) *component.Element {
	e := component.MustMake(name, nil)
	if voidElements[name] {
		e.OmitEndTag()
	}

	var children []component.Node
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			e.Attr(string(v))
		case []Attr:
			for _, a := range v {
				e.Attr(string(a))
			}
		case Option:
			v(e)
		case string:
			children = append(children, component.Text(v))
		case component.Node:
			children = append(children, v)
		case []component.Node:
			children = append(children, v...)
		case []*component.Element:
			for _, c := range v {
				children = append(children, c)
			}
		default:
			children = append(children, component.Text(fmt.Sprint(v)))
		}
	}
	return e.Append(children...)
}

// Custom builds a custom element. Underscores in name render as hyphens, so
// Custom("my_card") produces <my-card>.
func Custom(name string, args ...any) *component.Element {
	return Tag(name, args...)
}
