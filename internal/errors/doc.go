// Package errors provides coded, structured errors for the site and its CLI.
//
// Every failure that reaches an operator (bad configuration, an unreadable
// catalog, a failed upload) is a *SiteError carrying:
//   - a stable code (E101, E121, ...) mapping to a registered message
//   - a category (config, catalog, newsletter, export, publish, runtime)
//   - optional detail, a fix suggestion, and the wrapped cause
//
// # Usage
//
//	err := errors.New("E121").
//	    WithDetail("line 12: mapping values are not allowed here").
//	    WithSuggestion("Check the indentation of content/catalog.yaml").
//	    Wrap(cause)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR E121: Catalog could not be parsed
//	//
//	//   line 12: mapping values are not allowed here
//	//
//	//   Hint: Check the indentation of content/catalog.yaml
//
// SiteError implements Unwrap, so errors.Is and errors.As see the cause.
// Use Is(err, code) to test for a specific code anywhere in a chain.
package errors
