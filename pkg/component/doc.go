// Package component compiles trees of markup elements into HTML or XML
// strings.
//
// It is a small building block: no element or attribute names
// are validated, no tag is known to be void, and nothing is escaped. Higher
// level packages are expected to wrap it with their own rules.
//
// # Building trees
//
//	page := component.MustMake("html", []string{"lang en"},
//	    component.MustMake("body", nil,
//	        component.MustMake("my_button", nil, component.Text("Save")).
//	            Extends("button"),
//	        component.MustMake("img", nil).
//	            OmitEndTag().
//	            Attr("src /logo.png", "alt Logo"),
//	    ),
//	)
//	out, err := page.Compile()
//	// <html lang="en"><body><button is="my-button">Save</button><img src="/logo.png" alt="Logo"></body></html>
//
// # Attributes
//
// Attributes are written as "key value" strings split on the first space.
// They render in this order: is (for extended elements), role, then the
// explicit attributes in the order their keys were first set. An attribute
// whose value equals its key renders as the bare key, so "required required"
// becomes required.
//
// # Ownership
//
// An *Element belongs to at most one parent. Attaching it a second time
// fails with ErrSharedNode. Text values are immutable and may be reused.
//
// # Security
//
// Text content and attribute values are emitted exactly as given. A value
// containing a double quote or markup will break out of its context. Callers
// must escape untrusted input (for example with html.EscapeString) before
// it reaches this package.
package component
