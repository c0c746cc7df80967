// Package ui derives the page's presentational styling from small pieces of
// interaction state.
package ui

import (
	"html/template"
	"strings"
)

// Palette is the neo-brutalist colour set shared by every section.
var Palette = struct {
	White  string
	Black  string
	Text   string
	Border string
	Yellow string
	Red    string
}{
	White:  "#ffffff",
	Black:  "#000000",
	Text:   "#000000",
	Border: "#1a1a1a",
	Yellow: "#fff500",
	Red:    "#ff5252",
}

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of declarations.
type Style []Decl

// With returns a copy of s with property set to value, replacing any earlier value.
func (s Style) With(property, value string) Style {
	out := make(Style, 0, len(s)+1)
	for _, d := range s {
		if d.Property != property {
			out = append(out, d)
		}
	}
	return append(out, Decl{Property: property, Value: value})
}

// Get returns the value of property, or "" when unset.
func (s Style) Get(property string) string {
	for _, d := range s {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// String renders the declarations as "prop: value; prop: value".
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// CSS marks the declarations as trusted for html/template. Values come only
// from this package, never from request input.
func (s Style) CSS() template.CSS {
	return template.CSS(s.String())
}

// rule renders a single selector block.
func rule(selector string, s Style) string {
	return selector + " { " + s.String() + "; }\n"
}

// CardStyle is the coloured, hard-shadowed panel used for every record card.
func CardStyle(color string) Style {
	return Style{
		{"background-color", color},
		{"border", "3px solid " + Palette.Black},
		{"box-shadow", "6px 6px 0px " + Palette.Black},
	}
}
