// Package el is a small construction DSL on top of package component.
//
// Each HTML tag has a constructor taking a variadic list of arguments:
// attributes, options, strings (text) and child nodes, in any order.
//
//	page := el.Html(el.Attr("lang en"),
//	    el.Body(
//	        el.H1("Hello"),
//	        el.Custom("my_card", el.Extends("section"), el.Role("region"),
//	            el.P("card body"),
//	        ),
//	        el.Img(el.Attr("src /logo.png")),
//	    ),
//	)
//	out, err := page.Compile()
//
// Void tags such as img and br are built without an end tag. Errors are
// recorded on the element and surface from Compile, as in package component.
package el
