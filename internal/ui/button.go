package ui

import (
	"fmt"
	"html/template"
	"strings"
)

const (
	shadowRest  = 4
	shadowHover = 6
	liftHover   = -2
	sinkPress   = 4
)

// BaseButton is the resting look shared by every button.
var BaseButton = Style{
	{"display", "flex"},
	{"align-items", "center"},
	{"justify-content", "center"},
	{"gap", "10px"},
	{"padding", "12px 24px"},
	{"border", "3px solid " + Palette.Black},
	{"font-weight", "bold"},
	{"font-size", "1rem"},
	{"cursor", "pointer"},
	{"transition", "transform 0.1s ease, box-shadow 0.1s ease"},
}

// ButtonState tracks pointer hover and press for one button. It only changes
// the offset and shadow the button is drawn with.
type ButtonState struct {
	Hovered bool
	Pressed bool
}

// Hover records the pointer entering or leaving the button. Leaving also
// releases a press.
func (b *ButtonState) Hover(on bool) {
	b.Hovered = on
	if !on {
		b.Pressed = false
	}
}

// Press records the pointer going down or up on the button.
func (b *ButtonState) Press(on bool) {
	b.Pressed = on
}

// Offset is the translation applied to the button. Press wins over hover.
func (b ButtonState) Offset() (x, y int) {
	switch {
	case b.Pressed:
		return sinkPress, sinkPress
	case b.Hovered:
		return liftHover, liftHover
	default:
		return 0, 0
	}
}

// Shadow is the hard drop shadow for the current state.
func (b ButtonState) Shadow() string {
	switch {
	case b.Pressed:
		return "none"
	case b.Hovered:
		return fmt.Sprintf("%dpx %dpx 0px %s", shadowHover, shadowHover, Palette.Black)
	default:
		return fmt.Sprintf("%dpx %dpx 0px %s", shadowRest, shadowRest, Palette.Black)
	}
}

// Transform is the CSS transform for the current offset.
func (b ButtonState) Transform() string {
	x, y := b.Offset()
	if x == 0 && y == 0 {
		return "none"
	}
	return fmt.Sprintf("translate(%dpx, %dpx)", x, y)
}

// Style is the state-dependent part of the button's look.
func (b ButtonState) Style() Style {
	return Style{
		{"transform", b.Transform()},
		{"box-shadow", b.Shadow()},
	}
}

// ButtonRules renders the stylesheet for selector in all three states. The
// browser flips data-hover and data-press as the pointer moves; these rules
// decide what each combination looks like.
func ButtonRules(selector string) template.CSS {
	var sb strings.Builder

	rest := ButtonState{}
	hover := ButtonState{Hovered: true}
	press := ButtonState{Hovered: true, Pressed: true}

	base := BaseButton
	for _, d := range rest.Style() {
		base = base.With(d.Property, d.Value)
	}
	sb.WriteString(rule(selector, base))
	sb.WriteString(rule(selector+`[data-hover="true"]`, hover.Style()))
	sb.WriteString(rule(selector+`[data-press="true"]`, press.Style()))
	return template.CSS(sb.String())
}
