// Package errors provides coded, actionable errors for htmlcomponent.
//
// Every error carries a stable code (e.g. "C001") registered with a
// category, a short message, a hint and a documentation URL. Callers add
// instance detail fluently:
//
//	err := errors.New(errors.CodeInvalidAttribute).
//	    WithDetailf("%q has no space between key and value", pair)
//
// A bare errors.New(code) doubles as a sentinel: (*Error).Is compares codes,
// so errors.Is(err, sentinel) matches any error with the same code.
//
// # Codes
//
//   - C001-C019 component contract (names, attributes, ownership)
//   - C020-C039 document decoding
//   - C040-C059 configuration
//   - C060-C079 output sinks
//   - C080-C099 compile server
//
// Format renders the error for a terminal, including the source lines around
// Location when one is set:
//
//	ERROR C020: Invalid document JSON
//
//	  page.json:3:14
//
//	       2 │   "element": "html",
//	  →    3 │   "content": [,
//	         │              ^
//	       4 │ }
package errors
