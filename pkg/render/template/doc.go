// Package template defines renderer-agnostic template interfaces so page
// renderers can swap template engines without changing their own contract.
package template
