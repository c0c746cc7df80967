package web

import (
	"html/template"
	"strings"

	"github.com/PavanAnganna90/portfolio/internal/portfolio"
	"github.com/PavanAnganna90/portfolio/internal/ui"
)

// pageView is the data behind index.html.
type pageView struct {
	Site      *portfolio.Site
	Year      int
	ButtonCSS template.CSS
	RevealCSS template.CSS
}

func newPageView(site *portfolio.Site, year int) pageView {
	return pageView{
		Site:      site,
		Year:      year,
		ButtonCSS: ui.ButtonRules(".nb-btn"),
		RevealCSS: ui.RevealRules(".reveal"),
	}
}

// templateFuncs binds the icon endpoint into the templates.
func templateFuncs(iconBase string) template.FuncMap {
	return template.FuncMap{
		"icon": func(slug string) string {
			return portfolio.IconURL(iconBase, slug)
		},
		"card": func(color string) template.CSS {
			return ui.CardStyle(color).CSS()
		},
		"swatch": func(color string) template.CSS {
			return ui.Style{{Property: "background-color", Value: color}}.CSS()
		},
		"upper": strings.ToUpper,
	}
}

func parseTemplates(iconBase string) (*template.Template, error) {
	return template.New("").Funcs(templateFuncs(iconBase)).ParseFS(assets, "templates/*.html")
}
