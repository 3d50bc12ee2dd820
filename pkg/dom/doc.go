// Package dom provides a minimal server-side node tree.
//
// Nodes are what mounted views point at: elements carry attributes set by
// live attribute bindings, and comment nodes serve as markers for views
// that render nothing. The tree is deliberately small; it supports exactly
// the mutations attribute patching and mounting need.
package dom
