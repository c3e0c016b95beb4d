// Package encode renders ir.Node values as compact single-line text, used
// by error messages, tests, and the dx CLI. Symbols render bare and strings
// quoted so the two key universes remain visible; tags render as a !tag
// prefix on maps. Optional ANSI coloring is available for terminals.
package encode
