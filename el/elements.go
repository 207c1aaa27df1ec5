// Element constructors, one per HTML tag. Void tags get no end tag (see Tag).

package el

import "github.com/vango-dev/htmlcomponent/pkg/component"

// Document structure

func Html(args ...any) *component.Element     { return Tag("html", args...) }
func Head(args ...any) *component.Element     { return Tag("head", args...) }
func Body(args ...any) *component.Element     { return Tag("body", args...) }
func Title(args ...any) *component.Element    { return Tag("title", args...) }
func Meta(args ...any) *component.Element     { return Tag("meta", args...) }
func Link(args ...any) *component.Element     { return Tag("link", args...) }
func Base(args ...any) *component.Element     { return Tag("base", args...) }
func Style(args ...any) *component.Element    { return Tag("style", args...) }
func Script(args ...any) *component.Element   { return Tag("script", args...) }
func Noscript(args ...any) *component.Element { return Tag("noscript", args...) }

// Sectioning

func Header(args ...any) *component.Element  { return Tag("header", args...) }
func Footer(args ...any) *component.Element  { return Tag("footer", args...) }
func Main(args ...any) *component.Element    { return Tag("main", args...) }
func Nav(args ...any) *component.Element     { return Tag("nav", args...) }
func Section(args ...any) *component.Element { return Tag("section", args...) }
func Article(args ...any) *component.Element { return Tag("article", args...) }
func Aside(args ...any) *component.Element   { return Tag("aside", args...) }
func Address(args ...any) *component.Element { return Tag("address", args...) }
func H1(args ...any) *component.Element      { return Tag("h1", args...) }
func H2(args ...any) *component.Element      { return Tag("h2", args...) }
func H3(args ...any) *component.Element      { return Tag("h3", args...) }
func H4(args ...any) *component.Element      { return Tag("h4", args...) }
func H5(args ...any) *component.Element      { return Tag("h5", args...) }
func H6(args ...any) *component.Element      { return Tag("h6", args...) }

// Text content

func Div(args ...any) *component.Element        { return Tag("div", args...) }
func P(args ...any) *component.Element          { return Tag("p", args...) }
func Span(args ...any) *component.Element       { return Tag("span", args...) }
func Pre(args ...any) *component.Element        { return Tag("pre", args...) }
func Blockquote(args ...any) *component.Element { return Tag("blockquote", args...) }
func Ul(args ...any) *component.Element         { return Tag("ul", args...) }
func Ol(args ...any) *component.Element         { return Tag("ol", args...) }
func Li(args ...any) *component.Element         { return Tag("li", args...) }
func Dl(args ...any) *component.Element         { return Tag("dl", args...) }
func Dt(args ...any) *component.Element         { return Tag("dt", args...) }
func Dd(args ...any) *component.Element         { return Tag("dd", args...) }
func Hr(args ...any) *component.Element         { return Tag("hr", args...) }
func Figure(args ...any) *component.Element     { return Tag("figure", args...) }
func Figcaption(args ...any) *component.Element { return Tag("figcaption", args...) }

// Inline text

func A(args ...any) *component.Element      { return Tag("a", args...) }
func Strong(args ...any) *component.Element { return Tag("strong", args...) }
func Em(args ...any) *component.Element     { return Tag("em", args...) }
func B(args ...any) *component.Element      { return Tag("b", args...) }
func I(args ...any) *component.Element      { return Tag("i", args...) }
func Small(args ...any) *component.Element  { return Tag("small", args...) }
func Mark(args ...any) *component.Element   { return Tag("mark", args...) }
func Code(args ...any) *component.Element   { return Tag("code", args...) }
func Abbr(args ...any) *component.Element   { return Tag("abbr", args...) }
func Time_(args ...any) *component.Element  { return Tag("time", args...) }
func Br(args ...any) *component.Element     { return Tag("br", args...) }
func Wbr(args ...any) *component.Element    { return Tag("wbr", args...) }

// Forms

func Form(args ...any) *component.Element     { return Tag("form", args...) }
func Input(args ...any) *component.Element    { return Tag("input", args...) }
func Textarea(args ...any) *component.Element { return Tag("textarea", args...) }
func Select(args ...any) *component.Element   { return Tag("select", args...) }
func Option_(args ...any) *component.Element  { return Tag("option", args...) }
func Button(args ...any) *component.Element   { return Tag("button", args...) }
func Label(args ...any) *component.Element    { return Tag("label", args...) }
func Fieldset(args ...any) *component.Element { return Tag("fieldset", args...) }
func Legend(args ...any) *component.Element   { return Tag("legend", args...) }

// Tables

func Table(args ...any) *component.Element   { return Tag("table", args...) }
func Thead(args ...any) *component.Element   { return Tag("thead", args...) }
func Tbody(args ...any) *component.Element   { return Tag("tbody", args...) }
func Tr(args ...any) *component.Element      { return Tag("tr", args...) }
func Th(args ...any) *component.Element      { return Tag("th", args...) }
func Td(args ...any) *component.Element      { return Tag("td", args...) }
func Caption(args ...any) *component.Element { return Tag("caption", args...) }
func Col(args ...any) *component.Element     { return Tag("col", args...) }

// Media

func Img(args ...any) *component.Element     { return Tag("img", args...) }
func Picture(args ...any) *component.Element { return Tag("picture", args...) }
func Source(args ...any) *component.Element  { return Tag("source", args...) }
func Video(args ...any) *component.Element   { return Tag("video", args...) }
func Audio(args ...any) *component.Element   { return Tag("audio", args...) }
func Track(args ...any) *component.Element   { return Tag("track", args...) }
func Iframe(args ...any) *component.Element  { return Tag("iframe", args...) }
func Embed(args ...any) *component.Element   { return Tag("embed", args...) }
func Canvas(args ...any) *component.Element  { return Tag("canvas", args...) }
func Svg(args ...any) *component.Element     { return Tag("svg", args...) }

// Interactive

func Details(args ...any) *component.Element  { return Tag("details", args...) }
func Summary(args ...any) *component.Element  { return Tag("summary", args...) }
func Dialog(args ...any) *component.Element   { return Tag("dialog", args...) }
func Template(args ...any) *component.Element { return Tag("template", args...) }
func Slot(args ...any) *component.Element     { return Tag("slot", args...) }
