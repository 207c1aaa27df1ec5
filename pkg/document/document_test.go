package document

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/component"
)

const page = `{
  "element": "html",
  "attributes": {"lang": "en"},
  "content": [
    {"element": "head", "content": [{"element": "title", "content": "Hi"}]},
    {"element": "body", "content": [
      {"element": "my_card", "extends": "section", "role": "region",
       "attributes": {"z-last": "1", "a-first": "2"},
       "content": "card"},
      {"element": "img", "omit-end-tag": true, "attributes": {"src": "/a.png"}},
      "<!-- raw -->"
    ]}
  ]
}`

func TestParsePage(t *testing.T) {
	n, err := Parse([]byte(page))
	require.NoError(t, err)

	out, err := n.Compile()
	require.NoError(t, err)
	assert.Equal(t,
		`<html lang="en"><head><title>Hi</title></head><body>`+
			`<section is="my-card" role="region" z-last="1" a-first="2">card</section>`+
			`<img src="/a.png"><!-- raw --></body></html>`,
		out)
}

func TestParseText(t *testing.T) {
	n, err := Parse([]byte(`"just text"`))
	require.NoError(t, err)
	assert.Equal(t, component.Text("just text"), n)
}

func TestDecodeReader(t *testing.T) {
	n, err := Decode(strings.NewReader(`{"element":"p","content":"x"}`))
	require.NoError(t, err)
	out, err := n.Compile()
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", out)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{"syntax", `{"element": "p",}`, errors.CodeDocumentSyntax},
		{"empty", ``, errors.CodeDocumentSyntax},
		{"unknown field", `{"element": "p", "kids": []}`, errors.CodeDocumentSyntax},
		{"attribute not a string", `{"element": "p", "attributes": {"a": 1}}`, errors.CodeDocumentSyntax},
		{"missing element", `{"content": "x"}`, errors.CodeDocumentElement},
		{"nested missing element", `{"element": "div", "content": [{"role": "x"}]}`, errors.CodeDocumentElement},
		{"numeric content", `{"element": "p", "content": 5}`, errors.CodeDocumentContent},
		{"numeric item", `{"element": "p", "content": ["a", 5]}`, errors.CodeDocumentContent},
		{"root array", `["a"]`, errors.CodeDocumentContent},
		{"empty attribute key", `{"element": "p", "attributes": {"": "x"}}`, errors.CodeInvalidAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err), "err = %v", err)
		})
	}
}

func TestSyntaxErrorLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.json")
	src := "{\n  \"element\": \"p\",\n  \"content\": x\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	_, err := DecodeFile(path)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e), "err = %v", err)
	require.NotNil(t, e.Location)
	assert.Equal(t, path, e.Location.File)
	assert.Equal(t, 3, e.Location.Line)
	assert.Equal(t, 14, e.Location.Column)
	assert.NotEmpty(t, e.Context)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, errors.CodeDocumentRead, errors.CodeOf(err))
}

func TestEncodeRoundTrip(t *testing.T) {
	n, err := Parse([]byte(page))
	require.NoError(t, err)
	want, err := n.Compile()
	require.NoError(t, err)

	data, err := Encode(n)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	got, err := again.Compile()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeShape(t *testing.T) {
	el := component.MustMake("p", []string{"b 1", "a 2"}, component.Text("<b>x</b>"))
	data, err := Encode(el)
	require.NoError(t, err)
	assert.Equal(t, `{
  "element": "p",
  "attributes": {
    "b": "1",
    "a": "2"
  },
  "content": "<b>x</b>"
}
`, string(data))

	data, err = Encode(component.MustMake("br", nil).OmitEndTag())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"element\": \"br\",\n  \"omit-end-tag\": true\n}\n", string(data))
}

func TestEncodeReportsElementError(t *testing.T) {
	el := component.MustMake("p", nil).Attr("broken")
	_, err := Encode(el)
	assert.ErrorIs(t, err, component.ErrInvalidAttribute)
}
