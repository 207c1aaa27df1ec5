package document

import (
	"bytes"
	"encoding/json"

	"github.com/vango-dev/htmlcomponent/pkg/component"
)

// encoded mirrors node with content held as a Go value.
type encoded struct {
	Element    string                `json:"element"`
	Extends    string                `json:"extends,omitempty"`
	Role       string                `json:"role,omitempty"`
	OmitEndTag bool                  `json:"omit-end-tag,omitempty"`
	Attributes *component.Attributes `json:"attributes,omitempty"`
	Content    any                   `json:"content,omitempty"`
}

// Encode writes n as an indented document. Decoding the result yields a
// tree that compiles to the same markup.
func Encode(n component.Node) ([]byte, error) {
	v, err := toValue(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toValue(n component.Node) (any, error) {
	switch n := n.(type) {
	case component.Text:
		return string(n), nil
	case *component.Element:
		if err := n.Err(); err != nil {
			return nil, err
		}
		out := encoded{
			Element:    n.GetElement(),
			Extends:    n.GetExtends(),
			Role:       n.GetRole(),
			OmitEndTag: n.EndTagOmitted(),
		}
		if attrs := n.Attributes(); attrs.Len() > 0 {
			out.Attributes = attrs
		}

		children := n.Children()
		if len(children) == 1 {
			if t, ok := children[0].(component.Text); ok {
				out.Content = string(t)
				return out, nil
			}
		}
		if len(children) > 0 {
			content := make([]any, 0, len(children))
			for _, c := range children {
				v, err := toValue(c)
				if err != nil {
					return nil, err
				}
				content = append(content, v)
			}
			out.Content = content
		}
		return out, nil
	default:
		return nil, nil
	}
}
