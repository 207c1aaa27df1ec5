// Package document reads and writes element trees as JSON.
//
// A document is either a string (a text node) or an object:
//
//	{
//	  "element": "my_card",
//	  "extends": "section",
//	  "role": "region",
//	  "omit-end-tag": false,
//	  "attributes": {"id": "main", "hidden": "hidden"},
//	  "content": ["text", {"element": "p", "content": "more"}]
//	}
//
// Attribute order follows the JSON object. Content may be a string, an
// array of strings and objects, or omitted.
package document

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/component"
)

// node is the JSON shape of an element.
type node struct {
	Element    string                `json:"element"`
	Extends    string                `json:"extends,omitempty"`
	Role       string                `json:"role,omitempty"`
	OmitEndTag bool                  `json:"omit-end-tag,omitempty"`
	Attributes *component.Attributes `json:"attributes,omitempty"`
	Content    json.RawMessage       `json:"content,omitempty"`
}

// Decode reads a whole document from r.
func Decode(r io.Reader) (component.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).Wrap(err)
	}
	return parse("", data)
}

// DecodeFile reads the document at path. Syntax errors point into the file.
func DecodeFile(path string) (component.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).WithDetail(path).Wrap(err)
	}
	return parse(path, data)
}

// Parse decodes a document held in memory.
func Parse(data []byte) (component.Node, error) {
	return parse("", data)
}

func parse(name string, data []byte) (component.Node, error) {
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		return nil, syntaxError(name, data, err)
	}
	return value(bytes.TrimSpace(data), "$")
}

// value decodes one content entry: a string or an element object.
func value(raw json.RawMessage, path string) (component.Node, error) {
	switch firstByte(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.New(errors.CodeDocumentSyntax).WithDetail(path).Wrap(err)
		}
		return component.Text(s), nil
	case '{':
		el, err := element(raw, path)
		if err != nil {
			return nil, err
		}
		return el, nil
	default:
		return nil, errors.New(errors.CodeDocumentContent).
			WithDetailf("%s: want a string or an object, got %s", path, kind(raw))
	}
}

func element(raw json.RawMessage, path string) (*component.Element, error) {
	var n node
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&n); err != nil {
		return nil, errors.New(errors.CodeDocumentSyntax).WithDetail(path).Wrap(err)
	}
	if n.Element == "" {
		return nil, errors.New(errors.CodeDocumentElement).WithDetail(path)
	}

	children, err := content(n.Content, path)
	if err != nil {
		return nil, err
	}

	el, err := component.Make(n.Element, nil)
	if err != nil {
		return nil, err
	}
	n.Attributes.Each(func(k, v string) { el.SetAttr(k, v) })
	el.Extends(n.Extends).Role(n.Role).OmitEndTag(n.OmitEndTag).Append(children...)
	if err := el.Err(); err != nil {
		return nil, err
	}
	return el, nil
}

func content(raw json.RawMessage, path string) ([]component.Node, error) {
	switch firstByte(raw) {
	case 0, 'n':
		return nil, nil
	case '"':
		n, err := value(raw, path+".content")
		if err != nil {
			return nil, err
		}
		return []component.Node{n}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.New(errors.CodeDocumentSyntax).WithDetail(path).Wrap(err)
		}
		nodes := make([]component.Node, 0, len(items))
		for i, item := range items {
			n, err := value(item, fmt.Sprintf("%s.content[%d]", path, i))
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		}
		return nodes, nil
	default:
		return nil, errors.New(errors.CodeDocumentContent).
			WithDetailf("%s.content: want a string or an array, got %s", path, kind(raw))
	}
}

func firstByte(raw []byte) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func kind(raw []byte) string {
	switch firstByte(raw) {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	case 0:
		return "nothing"
	default:
		return "number"
	}
}

// syntaxError converts a JSON syntax error into C020 with a line and column.
func syntaxError(name string, data []byte, err error) error {
	e := errors.New(errors.CodeDocumentSyntax).Wrap(err)
	var se *json.SyntaxError
	if !stderrors.As(err, &se) {
		return e
	}
	if name == "" {
		name = "<input>"
	}
	line, col := errors.Position(data, se.Offset)
	return e.WithSource(name, data, line, col)
}
