package portfolio

// Brand colours used by the content records.
const (
	ColorYellow   = "#fff500"
	ColorRed      = "#ff5252"
	ColorBlue     = "#4d7cff"
	ColorGreen    = "#00d18b"
	ColorPink     = "#ff7ad9"
	ColorOrange   = "#ff9f1c"
	ColorPurple   = "#a66cff"
	ColorLinkedIn = "#0077B5"
)

var (
	AboutMe = `DevOps and platform engineer who turns fragile release processes into boring,
	repeatable pipelines. I build the paved roads teams ship on: Kubernetes platforms,
	infrastructure as code, and observability that answers questions before they are asked.`

	FooterNote = "Pavan Anganna. Built with Go & Neo-Brutalism."
)

var navLinks = []NavLink{
	{Label: "WORK", Anchor: "experience"},
	{Label: "SKILLS", Anchor: "skills"},
	{Label: "PROJECTS", Anchor: "projects"},
	{Label: "EDUCATION", Anchor: "education"},
	{Label: "CONTACT", Anchor: "contact"},
}

var tickers = []Ticker{
	{
		Items: []string{"KUBERNETES", "TERRAFORM", "CI/CD", "OBSERVABILITY", "PLATFORM ENGINEERING", "SRE"},
		Color: ColorYellow,
	},
	{
		Items:   []string{"AUTOMATE EVERYTHING", "SHIP SMALL", "MEASURE", "REPEAT"},
		Color:   ColorRed,
		Reverse: true,
	},
}

var experience = []Experience{
	{
		Company:  "Northwind Cloud",
		Role:     "Senior DevOps Engineer",
		Duration: "2022 - Present",
		Location: "Bengaluru, India",
		Color:    ColorYellow,
		Highlights: []string{
			"Led the migration of 40+ services to a multi-tenant EKS platform with GitOps delivery",
			"Cut median deploy time from 45 minutes to 8 with parallelised pipelines and build caching",
			"Introduced SLO-based alerting that halved after-hours pages",
		},
	},
	{
		Company:  "Brightline Systems",
		Role:     "Site Reliability Engineer",
		Duration: "2019 - 2022",
		Location: "Hyderabad, India",
		Color:    ColorBlue,
		Highlights: []string{
			"Owned Terraform modules for networking, IAM and data stores across three AWS accounts",
			"Built a Prometheus and Grafana stack that replaced a paid monitoring vendor",
			"Ran blameless postmortems and drove the top fixes to completion",
		},
	},
	{
		Company:  "Acme Retail Tech",
		Role:     "Systems Engineer",
		Duration: "2016 - 2019",
		Location: "Pune, India",
		Color:    ColorGreen,
		Detail: "Automated Linux fleet provisioning with Ansible and Jenkins, moving weekly manual " +
			"releases to daily scripted ones for the storefront and inventory services.",
	},
}

var skills = []Skill{
	{Name: "Kubernetes", Icon: "kubernetes"},
	{Name: "Docker", Icon: "docker"},
	{Name: "Terraform", Icon: "terraform"},
	{Name: "AWS", Icon: "amazonwebservices"},
	{Name: "Go", Icon: "go"},
	{Name: "Python", Icon: "python"},
	{Name: "Helm", Icon: "helm"},
	{Name: "Argo CD", Icon: "argo"},
	{Name: "GitHub Actions", Icon: "githubactions"},
	{Name: "Jenkins", Icon: "jenkins"},
	{Name: "Prometheus", Icon: "prometheus"},
	{Name: "Grafana", Icon: "grafana"},
	{Name: "Ansible", Icon: "ansible"},
	{Name: "Linux", Icon: "linux"},
}

var projects = []Project{
	{
		Slug:         "platform-blueprint",
		Title:        "Platform Blueprint",
		Organization: "Northwind Cloud",
		Description: "A self-service Kubernetes platform template: cluster bootstrap, ingress, " +
			"secrets and GitOps wired together so new teams ship on day one.",
		Color: ColorPink,
	},
	{
		Slug:         "pipeline-doctor",
		Title:        "Pipeline Doctor",
		Organization: "Open Source",
		Description: "A CLI that profiles CI runs, flags the slowest steps and suggests caching " +
			"and parallelism changes.",
		Color: ColorOrange,
	},
	{
		Slug:         "slo-kit",
		Title:        "SLO Kit",
		Organization: "Brightline Systems",
		Description: "Prometheus recording rules and Grafana dashboards generated from a short " +
			"YAML description of each service objective.",
		Color: ColorPurple,
	},
}

var education = []Education{
	{
		School: "Visvesvaraya Technological University",
		Degree: "B.E. Computer Science",
		Year:   "2016",
		Color:  ColorBlue,
	},
}

var certifications = []Certification{
	{Name: "Certified Kubernetes Administrator", Issuer: "CNCF", Date: "2023", Color: ColorYellow},
	{Name: "AWS Solutions Architect Associate", Issuer: "Amazon Web Services", Date: "2022", Color: ColorOrange},
	{Name: "HashiCorp Terraform Associate", Issuer: "HashiCorp", Date: "2021", Color: ColorPurple},
}

var testimonial = Testimonial{
	Quote: "Pavan rebuilt our delivery pipeline without ever stopping the line. " +
		"Releases went from a ceremony to a non-event.",
	Author: "Engineering Manager",
	Title:  "Northwind Cloud",
}

var social = []SocialLink{
	{Label: "LINKEDIN", URL: "https://www.linkedin.com/in/pavan90/", Icon: "linkedin", Color: ColorLinkedIn},
	{Label: "GITHUB", URL: "https://github.com/PavanAnganna90", Icon: "github", Color: ColorRed},
}

// Default returns the site content. Each call returns an independent copy.
func Default() *Site {
	return &Site{
		Profile: Profile{
			Name:     "Pavan Anganna",
			Title:    "DevOps & Platform Engineer",
			Tagline:  AboutMe,
			Location: "Bengaluru, India",
			Photo:    "/images/profile.jpg",
		},
		Nav:            clone(navLinks),
		Tickers:        cloneTickers(tickers),
		Experience:     cloneExperience(experience),
		Skills:         clone(skills),
		Projects:       clone(projects),
		Education:      clone(education),
		Certifications: clone(certifications),
		Testimonial:    testimonial,
		Social:         clone(social),
		Footer:         FooterNote,
	}
}

func clone[T any](in []T) []T {
	return append([]T(nil), in...)
}

func cloneTickers(in []Ticker) []Ticker {
	out := clone(in)
	for i := range out {
		out[i].Items = clone(out[i].Items)
	}
	return out
}

func cloneExperience(in []Experience) []Experience {
	out := clone(in)
	for i := range out {
		if out[i].Highlights != nil {
			out[i].Highlights = clone(out[i].Highlights)
		}
	}
	return out
}
