package component

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestCompileDeepTree(t *testing.T) {
	const depth = 200000

	el := MustMake("b", nil, Text("x"))
	for i := 1; i < depth; i++ {
		el = MustMake("b", nil, el)
	}

	got, err := el.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Repeat("<b>", depth) + "x" + strings.Repeat("</b>", depth)
	if got != want {
		t.Errorf("deep tree output mismatch (len %d, want %d)", len(got), len(want))
	}
}

func TestCompileWideTree(t *testing.T) {
	ul := MustMake("ul", nil)
	for i := 0; i < 1000; i++ {
		ul.Append(MustMake("li", nil, Text("i")))
	}
	got := ul.String()
	want := "<ul>" + strings.Repeat("<li>i</li>", 1000) + "</ul>"
	if got != want {
		t.Errorf("wide tree output mismatch")
	}
}

// The compiled page must parse back into the same structure.
func TestCompiledOutputParses(t *testing.T) {
	page := MustMake("html", []string{"lang en"},
		MustMake("head", nil, MustMake("title", nil, Text("T"))),
		MustMake("body", nil,
			MustMake("my_component", []string{"data-x 1"}, Text("Hello")).Extends("p").Role("note"),
			MustMake("img", []string{"src /a.png"}).OmitEndTag(),
			MustMake("input", []string{"required required"}).OmitEndTag(),
		),
	)
	out, err := page.Compile()
	if err != nil {
		t.Fatal(err)
	}

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}

	p := findElement(doc, "p")
	if p == nil {
		t.Fatalf("no <p> in %q", out)
	}
	wantAttrs := []html.Attribute{
		{Key: "is", Val: "my-component"},
		{Key: "role", Val: "note"},
		{Key: "data-x", Val: "1"},
	}
	if len(p.Attr) != len(wantAttrs) {
		t.Fatalf("<p> attrs = %v, want %v", p.Attr, wantAttrs)
	}
	for i, a := range wantAttrs {
		if p.Attr[i].Key != a.Key || p.Attr[i].Val != a.Val {
			t.Errorf("attr %d = %v, want %v", i, p.Attr[i], a)
		}
	}
	if p.FirstChild == nil || p.FirstChild.Data != "Hello" {
		t.Errorf("<p> text = %v", p.FirstChild)
	}

	input := findElement(doc, "input")
	if input == nil || len(input.Attr) != 1 || input.Attr[0].Key != "required" || input.Attr[0].Val != "" {
		t.Errorf("<input> = %+v, want bare required", input)
	}
	if img := findElement(doc, "img"); img == nil || img.NextSibling != input {
		t.Error("<img> should be followed directly by <input>")
	}
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func BenchmarkCompile(b *testing.B) {
	ul := MustMake("ul", []string{"class list"}).Role("list")
	for i := 0; i < 100; i++ {
		ul.Append(MustMake("li", []string{"class item", "data-i x"}, Text("item")))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ul.Compile(); err != nil {
			b.Fatal(err)
		}
	}
}
