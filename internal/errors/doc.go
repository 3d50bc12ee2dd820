// Package errors provides structured, actionable error messages for vattr.
//
// Every error carries a code from the registry (e.g. "E100") that maps to a
// category, a short message and a documentation URL. Callers add detail,
// a suggestion and the underlying cause:
//
//	err := errors.New("E101").
//	    WithDetail("unexpected end of JSON input").
//	    WithSuggestion("Check that vattr.json is valid JSON").
//	    Wrap(cause)
//
//	fmt.Println(err.Format())
//	// ERROR E101: Invalid configuration file
//	//
//	//   unexpected end of JSON input
//	//
//	//   Hint: Check that vattr.json is valid JSON
//	//
//	//   Learn more: https://vango.dev/vattr/errors/E101
//
// Attribute conversion and resolution never fail; codes exist only for the
// layers around them (configuration, rendering, publishing and the CLI).
package errors
