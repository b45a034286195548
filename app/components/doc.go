// Package components holds the landing page sections.
//
// Sections are plain functions from catalog records to vdom trees. They
// keep no state; the only per-render input beyond content is the current
// location (for the navbar) and the asset resolver.
package components
