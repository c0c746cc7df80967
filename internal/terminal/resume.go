// Package terminal renders the résumé for terminal clients such as curl.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/PavanAnganna90/portfolio/internal/portfolio"
	"github.com/PavanAnganna90/portfolio/internal/ui"
)

// DefaultWidth is the wrap width for paragraphs.
const DefaultWidth = 80

// Options controls terminal output.
type Options struct {
	Profile termenv.Profile
	Width   int
}

// Plain is ASCII output with no escape sequences.
var Plain = Options{Profile: termenv.Ascii, Width: DefaultWidth}

// Color is 256-colour output, which most terminals handle.
var Color = Options{Profile: termenv.ANSI256, Width: DefaultWidth}

type styles struct {
	name    lipgloss.Style
	title   lipgloss.Style
	section lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	para    lipgloss.Style
	quote   lipgloss.Style
	link    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, width int) styles {
	return styles{
		name: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.Palette.Black)).
			Background(lipgloss.Color(ui.Palette.Yellow)).
			Padding(0, 1),
		title: r.NewStyle().Bold(true),
		section: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.Palette.Red)).
			MarginTop(1),
		heading: r.NewStyle().Bold(true),
		muted:   r.NewStyle().Faint(true),
		para:    r.NewStyle().Width(width),
		quote: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ui.Palette.Yellow)).
			Padding(0, 1).
			Width(width - 2),
		link: r.NewStyle().Underline(true),
	}
}

// Render writes the résumé to w. Prose wraps at opts.Width; tickers and
// the skills list wrap between entries so a multi-word entry is never split.
func Render(w io.Writer, site *portfolio.Site, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(opts.Profile)
	st := newStyles(r, opts.Width)
	inner := opts.Width - 2

	var b strings.Builder
	line := func(s string) { b.WriteString(s + "\n") }

	p := site.Profile
	line(st.name.Render(strings.ToUpper(p.Name)))
	line(st.para.Render(st.title.Render(p.Title) + st.muted.Render("  "+p.Location)))
	line("")
	line(st.para.Render(collapse(p.Tagline)))

	for _, t := range site.Tickers {
		line("")
		color := r.NewStyle().Foreground(lipgloss.Color(t.Color))
		for _, l := range entries(t.Items, "  *  ", opts.Width) {
			line(color.Render(l))
		}
	}

	line(st.section.Render("EXPERIENCE"))
	for _, e := range site.Experience {
		line(hang(accent(r, e.Color), st.heading.Width(inner).Render(e.Role+" @ "+e.Company)))
		line(indent(st.muted.Width(inner).Render(e.Duration+" | "+e.Location), "  "))
		if e.Detail != "" {
			line(indent(st.para.Width(inner).Render(collapse(e.Detail)), "  "))
		}
		for _, h := range e.Highlights {
			line(bullet(st.para.Width(opts.Width-4).Render(h)))
		}
		line("")
	}

	line(st.section.Render("SKILLS"))
	names := make([]string, 0, len(site.Skills))
	for _, s := range site.Skills {
		names = append(names, s.Name)
	}
	for _, l := range entries(names, " · ", opts.Width) {
		line(l)
	}

	if len(site.Projects) > 0 {
		line(st.section.Render("PROJECTS"))
		for _, pr := range site.Projects {
			heading := st.heading.Render(pr.Title) + st.muted.Render(" ("+pr.Organization+")")
			line(hang(accent(r, pr.Color), st.para.Width(inner).Render(heading)))
			line(indent(st.para.Width(inner).Render(collapse(pr.Description)), "  "))
			line("")
		}
	}

	if len(site.Education) > 0 || len(site.Certifications) > 0 {
		line(st.section.Render("EDUCATION"))
		for _, ed := range site.Education {
			line(hang(accent(r, ed.Color), st.heading.Width(inner).Render(ed.Degree)))
			line(indent(st.para.Width(inner).Render(ed.School+st.muted.Render(" | "+ed.Year)), "  "))
		}
		for _, c := range site.Certifications {
			line(hang(accent(r, c.Color), st.heading.Width(inner).Render(c.Name)))
			line(indent(st.para.Width(inner).Render(c.Issuer+st.muted.Render(" | "+c.Date)), "  "))
		}
	}

	line(st.section.Render("TESTIMONIAL"))
	tm := site.Testimonial
	line(st.quote.Render(fmt.Sprintf("%q\n- %s, %s", tm.Quote, tm.Author, tm.Title)))

	// Links are never wrapped; a broken URL is useless to copy.
	line(st.section.Render("LET'S CONNECT"))
	for _, s := range site.Social {
		line(fmt.Sprintf("%-10s %s", s.Label, st.link.Render(s.URL)))
	}
	line("")
	line(st.muted.Width(opts.Width).Render(site.Footer))

	_, err := io.WriteString(w, b.String())
	return err
}

// entries packs items into lines no wider than width, breaking only between
// items. An item wider than width gets a line of its own.
func entries(items []string, sep string, width int) []string {
	var (
		lines []string
		cur   string
	)
	for _, item := range items {
		switch {
		case cur == "":
			cur = item
		case lipgloss.Width(cur+sep+item) <= width:
			cur += sep + item
		default:
			lines = append(lines, cur)
			cur = item
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// hang puts prefix before the first line of block and aligns the rest under it.
func hang(prefix, block string) string {
	pad := strings.Repeat(" ", lipgloss.Width(prefix))
	return prefix + strings.TrimPrefix(indent(block, pad), pad)
}

// accent is a coloured bullet in the record's own colour.
func accent(r *lipgloss.Renderer, color string) string {
	return r.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " "
}

// collapse folds the multi-line literals into single-spaced text.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func bullet(s string) string {
	return "  • " + strings.TrimPrefix(indent(s, "    "), "    ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
