package component

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
)

func TestCompileScenarios(t *testing.T) {
	tests := []struct {
		name string
		node func() *Element
		want string
	}{
		{
			name: "html with id",
			node: func() *Element { return MustMake("html", []string{"id my-component"}) },
			want: `<html id="my-component"></html>`,
		},
		{
			name: "nested span",
			node: func() *Element {
				return MustMake("p", nil, MustMake("span", nil, Text("Hello, World!")))
			},
			want: `<p><span>Hello, World!</span></p>`,
		},
		{
			name: "web component extension",
			node: func() *Element {
				return MustMake("my_button", nil, Text("Save")).Extends("button")
			},
			want: `<button is="my-button">Save</button>`,
		},
		{
			name: "void image",
			node: func() *Element {
				return MustMake("img", nil).OmitEndTag(true).Attr("src http://example.com", "alt A picture")
			},
			want: `<img src="http://example.com" alt="A picture">`,
		},
		{
			name: "empty children",
			node: func() *Element { return MustMake("style", nil) },
			want: `<style></style>`,
		},
		{
			name: "hyphenated custom element",
			node: func() *Element { return MustMake("my_link", []string{"href /x"}, Text("x")) },
			want: `<my-link href="/x">x</my-link>`,
		},
		{
			name: "role first",
			node: func() *Element { return MustMake("body", []string{"class app"}).Role("application") },
			want: `<body role="application" class="app"></body>`,
		},
		{
			name: "is before role",
			node: func() *Element {
				return MustMake("fancy_nav", []string{"id top"}).Role("navigation").Extends("nav")
			},
			want: `<nav is="fancy-nav" role="navigation" id="top"></nav>`,
		},
		{
			name: "boolean attribute",
			node: func() *Element {
				return MustMake("input", []string{"type text", "required required"}).OmitEndTag()
			},
			want: `<input type="text" required>`,
		},
		{
			name: "empty value is quoted",
			node: func() *Element { return MustMake("option", []string{"value "}) },
			want: `<option value=""></option>`,
		},
		{
			name: "value keeps further spaces",
			node: func() *Element { return MustMake("img", []string{"alt A picture of the world"}).OmitEndTag() },
			want: `<img alt="A picture of the world">`,
		},
		{
			name: "raw markup text",
			node: func() *Element { return MustMake("div", nil, Text("<p>Done!</p>"), Text(" & more")) },
			want: `<div><p>Done!</p> & more</div>`,
		},
		{
			name: "values are not escaped",
			node: func() *Element { return MustMake("a", []string{`title say "hi" <now>`}) },
			want: `<a title="say "hi" <now>"></a>`,
		},
		{
			name: "omitted end tag keeps children",
			node: func() *Element { return MustMake("li", nil, Text("one")).OmitEndTag() },
			want: `<li>one`,
		},
		{
			name: "extends without underscores",
			node: func() *Element { return MustMake("x-card", nil).Extends("section") },
			want: `<section is="x-card"></section>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node().Compile()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompilePage(t *testing.T) {
	page := MustMake("html", nil,
		MustMake("head", nil,
			MustMake("title", nil, Text("Hello, World!")),
			MustMake("style", nil),
		),
		MustMake("body", nil,
			MustMake("img", nil).
				OmitEndTag().
				Attr("src http://example.com", "alt A picture of the world"),
			MustMake("my_component", nil, Text("Hello, World!")).Extends("p"),
			MustMake("my_link", nil, Text("World Domination")).
				Attr("href http://example.com/domination"),
			Text("<p>Done!</p>"),
		),
	)

	want := `<html><head><title>Hello, World!</title><style></style></head><body><img src="http://example.com" alt="A picture of the world"><p is="my-component">Hello, World!</p><my-link href="http://example.com/domination">World Domination</my-link><p>Done!</p></body></html>`
	got, err := page.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestCompileExtraAttributes(t *testing.T) {
	el := MustMake("html", nil)
	got, err := el.Compile("id my-component")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `<html id="my-component"></html>` {
		t.Errorf("got %q", got)
	}

	// Extra attributes persist on the element.
	if again := el.String(); again != got {
		t.Errorf("String() = %q, want %q", again, got)
	}
}

func TestCompileExtraAttributesOverwriteInPlace(t *testing.T) {
	el := MustMake("div", []string{"id a", "class b"})
	got, err := el.Compile("id c", "data-x y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<div id="c" class="b" data-x="y"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	el := MustMake("ul", []string{"class list"},
		MustMake("li", nil, Text("a")),
		MustMake("li", nil, Text("b")),
	).Role("list")

	first, err := el.Compile()
	if err != nil {
		t.Fatal(err)
	}
	second, err := el.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Compile not idempotent: %q vs %q", first, second)
	}
}

func TestTagNameHyphenation(t *testing.T) {
	for _, name := range []string{"div", "my_component", "a_b_c", "_x_", "plain-name"} {
		el := MustMake(name, nil)
		tag := strings.ReplaceAll(name, "_", "-")
		want := "<" + tag + "></" + tag + ">"
		if got := el.String(); got != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
		if el.GetElement() != name {
			t.Errorf("GetElement() = %q, want %q", el.GetElement(), name)
		}
	}
}

func TestSynthesizedAttributesWin(t *testing.T) {
	el := MustMake("my_button", []string{"is other", "role other", "id x"}).
		Extends("button").
		Role("tab")
	want := `<button is="my-button" role="tab" id="x"></button>`
	if got := el.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	plain := MustMake("div", []string{"role note", "is thing"})
	want = `<div role="note" is="thing"></div>`
	if got := plain.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMakeEmptyName(t *testing.T) {
	el, err := Make("", nil)
	if el != nil {
		t.Errorf("expected nil element, got %v", el)
	}
	if !stderrors.Is(err, ErrInvalidElementName) {
		t.Errorf("err = %v, want ErrInvalidElementName", err)
	}
}

func TestMustMakePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustMake(\"\") should panic")
		}
	}()
	MustMake("", nil)
}

func TestInvalidAttributeSyntax(t *testing.T) {
	tests := []struct {
		name string
		pair string
	}{
		{"no space", "disabled"},
		{"leading space", " value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Make("input", []string{tt.pair})
			if !stderrors.Is(err, ErrInvalidAttribute) {
				t.Errorf("Make err = %v, want ErrInvalidAttribute", err)
			}

			el := MustMake("input", nil).Attr("type text", tt.pair, "name q")
			if !stderrors.Is(el.Err(), ErrInvalidAttribute) {
				t.Errorf("Err() = %v, want ErrInvalidAttribute", el.Err())
			}
			if _, err := el.Compile(); !stderrors.Is(err, ErrInvalidAttribute) {
				t.Errorf("Compile err = %v, want ErrInvalidAttribute", err)
			}
			if el.String() != "" {
				t.Errorf("String() = %q, want empty", el.String())
			}
		})
	}
}

func TestEmptyAttributeIgnored(t *testing.T) {
	el := MustMake("p", []string{"", "id a", ""})
	if el.Err() != nil {
		t.Fatalf("unexpected error: %v", el.Err())
	}
	if got := el.String(); got != `<p id="a"></p>` {
		t.Errorf("got %q", got)
	}
}

func TestInvalidExtraAttributeFailsCompile(t *testing.T) {
	el := MustMake("p", nil)
	if _, err := el.Compile("broken"); !stderrors.Is(err, ErrInvalidAttribute) {
		t.Errorf("err = %v, want ErrInvalidAttribute", err)
	}
}

func TestInvalidExtraAttributeDoesNotStick(t *testing.T) {
	el := MustMake("p", nil)
	if _, err := el.Compile("id a", "broken"); !stderrors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("err = %v, want ErrInvalidAttribute", err)
	}
	if el.Err() != nil {
		t.Errorf("element error = %v, want nil", el.Err())
	}
	got, err := el.Compile()
	if err != nil {
		t.Fatalf("compile after bad extra: %v", err)
	}
	if got != "<p></p>" {
		t.Errorf("got %q, want %q", got, "<p></p>")
	}
}

func TestDescendantErrorFailsCompile(t *testing.T) {
	child := MustMake("span", nil)
	root := MustMake("p", nil, child)
	child.Attr("oops")

	if _, err := root.Compile(); !stderrors.Is(err, ErrInvalidAttribute) {
		t.Errorf("err = %v, want ErrInvalidAttribute", err)
	}
}

func TestSetAttr(t *testing.T) {
	el := MustMake("div", nil).SetAttr("data-msg", "two words").SetAttr("hidden", "hidden")
	if got := el.String(); got != `<div data-msg="two words" hidden></div>` {
		t.Errorf("got %q", got)
	}
	if el.SetAttr("", "x").Err() == nil {
		t.Error("SetAttr with empty key should record an error")
	}
}

func TestOmitEndTagToggle(t *testing.T) {
	el := MustMake("br", nil).OmitEndTag()
	if !el.EndTagOmitted() || el.String() != "<br>" {
		t.Errorf("OmitEndTag(): got %q", el.String())
	}
	el.OmitEndTag(false)
	if el.EndTagOmitted() || el.String() != "<br></br>" {
		t.Errorf("OmitEndTag(false): got %q", el.String())
	}
}

func TestTextCompile(t *testing.T) {
	got, err := Text("Hello").Compile("id ignored")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestPrintAndEcho(t *testing.T) {
	el := MustMake("p", nil, Text("hi"))

	var buf bytes.Buffer
	if err := el.Print(&buf, "class a"); err != nil {
		t.Fatal(err)
	}
	if err := el.Echo(&buf); err != nil {
		t.Fatal(err)
	}
	if err := Echo(&buf, Text("!")); err != nil {
		t.Fatal(err)
	}
	want := `<p class="a">hi</p><p class="a">hi</p>!`
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	var out bytes.Buffer
	if err := Print(&out, MustMake("p", nil), "bad"); err == nil {
		t.Error("Print should fail on invalid extra attribute")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on error, got %q", out.String())
	}
}

func TestAccessors(t *testing.T) {
	child := MustMake("span", nil)
	el := MustMake("my_el", []string{"id a"}, Text("t"), child).Extends("div").Role("note")

	if el.GetExtends() != "div" || el.GetRole() != "note" {
		t.Errorf("GetExtends/GetRole = %q/%q", el.GetExtends(), el.GetRole())
	}
	if !el.IsWebComponent() {
		t.Error("IsWebComponent() = false")
	}
	if el.TagName() != "div" {
		t.Errorf("TagName() = %q", el.TagName())
	}
	if child.Parent() != el || el.Parent() != nil {
		t.Error("parent back-references not set as expected")
	}

	kids := el.Children()
	if len(kids) != 2 {
		t.Fatalf("Children() len = %d", len(kids))
	}
	kids[0] = Text("changed")
	if el.String() != `<div is="my-el" role="note" id="a">t<span></span></div>` {
		t.Errorf("mutating Children() copy changed output: %q", el.String())
	}

	attrs := el.Attributes()
	attrs.Set("id", "changed")
	if v, _ := el.Attributes().Get("id"); v != "a" {
		t.Errorf("mutating Attributes() copy changed element: id=%q", v)
	}
}
