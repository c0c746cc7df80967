package ui

import (
	"html/template"
	"strings"
)

// Reveal is a one-shot visibility latch. Once the watched region has been
// reported visible it stays visible.
type Reveal struct {
	visible bool
}

// Observe feeds one visibility report. It returns true only for the report
// that flips the latch.
func (r *Reveal) Observe(visible bool) bool {
	if r.visible || !visible {
		return false
	}
	r.visible = true
	return true
}

// Visible reports whether the latch has fired.
func (r *Reveal) Visible() bool {
	return r.visible
}

// Style is the fade/slide styling for the current state.
func (r *Reveal) Style() Style {
	if r.visible {
		return Style{
			{"opacity", "1"},
			{"transform", "translateY(0)"},
			{"transition", "opacity 0.6s ease-out, transform 0.6s ease-out"},
		}
	}
	return Style{
		{"opacity", "0"},
		{"transform", "translateY(40px)"},
		{"transition", "opacity 0.6s ease-out, transform 0.6s ease-out"},
	}
}

// RevealRules renders the hidden and shown rules for selector. The shown rule
// applies once the element carries the is-visible class.
func RevealRules(selector string) template.CSS {
	var hidden, shown Reveal
	shown.Observe(true)

	var sb strings.Builder
	sb.WriteString(rule(selector, hidden.Style()))
	sb.WriteString(rule(selector+".is-visible", shown.Style()))
	return template.CSS(sb.String())
}
