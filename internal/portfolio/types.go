// Package portfolio holds the résumé content rendered by the site.
package portfolio

// Profile is the hero banner subject.
type Profile struct {
	Name     string `json:"name"     validate:"required"`
	Title    string `json:"title"    validate:"required"`
	Tagline  string `json:"tagline"  validate:"required"`
	Location string `json:"location" validate:"required"`
	Photo    string `json:"photo"    validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// NavLink is an in-page anchor shown in the navigation bar.
type NavLink struct {
	Label  string `json:"label"  validate:"required"`
	Anchor string `json:"anchor" validate:"required,alphanum"`
}

// Ticker is one scrolling strip of phrases between sections.
type Ticker struct {
	Items   []string `json:"items"   validate:"required,min=1,dive,required"`
	Color   string   `json:"color"   validate:"required,hexcolor"`
	Reverse bool     `json:"reverse"`
}

// Experience is a work-experience card. It carries either a Detail paragraph
// or a list of Highlights, never both.
type Experience struct {
	Company    string   `json:"company"              validate:"required"`
	Role       string   `json:"role"                 validate:"required"`
	Duration   string   `json:"duration"             validate:"required"`
	Location   string   `json:"location"             validate:"required"`
	Color      string   `json:"color"                validate:"required,hexcolor"`
	Detail     string   `json:"detail,omitempty"`
	Highlights []string `json:"highlights,omitempty" validate:"omitempty,dive,required"`
}

// Skill is a pill in the skills grid. Icon is the slug requested from the icon CDN.
type Skill struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon" validate:"required,lowercase,excludesall=/?#"`
}

// Project is a project card.
type Project struct {
	Slug         string `json:"slug"         validate:"required"`
	Title        string `json:"title"        validate:"required"`
	Organization string `json:"organization" validate:"required"`
	Description  string `json:"description"  validate:"required"`
	Color        string `json:"color"        validate:"required,hexcolor"`
}

// Education is a degree listing.
type Education struct {
	School string `json:"school" validate:"required"`
	Degree string `json:"degree" validate:"required"`
	Year   string `json:"year"   validate:"required"`
	Color  string `json:"color"  validate:"required,hexcolor"`
}

// Certification is a certificate listing.
type Certification struct {
	Name   string `json:"name"   validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Date   string `json:"date"   validate:"required"`
	Color  string `json:"color"  validate:"required,hexcolor"`
}

// Testimonial is the single quote block.
type Testimonial struct {
	Quote  string `json:"quote"  validate:"required"`
	Author string `json:"author" validate:"required"`
	Title  string `json:"title"  validate:"required"`
}

// SocialLink is a footer button.
type SocialLink struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url"   validate:"required,url"`
	Icon  string `json:"icon"  validate:"required"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// Site is everything the page renders, in section order.
type Site struct {
	Profile        Profile         `json:"profile"        validate:"required"`
	Nav            []NavLink       `json:"nav"            validate:"required,min=1,dive"`
	Tickers        []Ticker        `json:"tickers"        validate:"dive"`
	Experience     []Experience    `json:"experience"     validate:"required,min=1,dive"`
	Skills         []Skill         `json:"skills"         validate:"required,min=1,dive"`
	Projects       []Project       `json:"projects"       validate:"dive"`
	Education      []Education     `json:"education"      validate:"dive"`
	Certifications []Certification `json:"certifications" validate:"dive"`
	Testimonial    Testimonial     `json:"testimonial"    validate:"required"`
	Social         []SocialLink    `json:"social"         validate:"dive"`
	Footer         string          `json:"footer"         validate:"required"`
}

// Project returns the project with the given slug.
func (s *Site) Project(slug string) (*Project, error) {
	for i := range s.Projects {
		if s.Projects[i].Slug == slug {
			return &s.Projects[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "project", Key: slug}
}

// WithContact applies deployment-specific contact details. A non-empty email
// adds the mailto button to the footer.
func (s *Site) WithContact(email, photo string) *Site {
	if photo != "" {
		s.Profile.Photo = photo
	}
	if email == "" {
		return s
	}
	s.Profile.Email = email
	s.Social = append(s.Social, SocialLink{
		Label: "EMAIL",
		URL:   "mailto:" + email,
		Icon:  "mail",
		Color: ColorYellow,
	})
	return s
}
