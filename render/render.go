/*
Package render turns a classification result into the hub's static website
and its HTML newsletter. Both documents are produced with html/template, so
article titles, sources and links are escaped.
*/
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/samber/lo"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/classify"
)

// Display limits.
const (
	TitleLimit            = 80
	MaxWebsiteProducts    = 12
	MaxWebsiteIndustries  = 10
	MaxNewsletterProducts = 5
)

// Branding is the fixed identity stamped on every rendered document.
type Branding struct {
	CompanyName    string
	Tagline        string
	Website        string
	PrimaryColor   string
	SecondaryColor string
	ContactEmail   string
	HubURL         string
}

// DefaultBranding returns the Cognitive Sprints branding.
func DefaultBranding() Branding {
	return Branding{
		CompanyName:    "Cognitive Sprints",
		Tagline:        "AI Learning & Innovation Hub",
		Website:        "https://cognitive-sprints.in",
		PrimaryColor:   "#667eea",
		SecondaryColor: "#764ba2",
		ContactEmail:   "sameer@cognitive-sprints.in",
		HubURL:         "https://sameer-ai-hub.netlify.app",
	}
}

type brandView struct {
	Name      string
	Tagline   string
	Primary   template.CSS
	Secondary template.CSS
	Contact   string
	HubURL    string
}

type productView struct {
	Number int
	Title  string
	Source string
	URL    string
}

type industryView struct {
	Name  string
	Count int
}

type pageView struct {
	Brand      brandView
	Date       string
	Year       int
	Products   []productView
	Industries []industryView
}

// Renderer renders the website and newsletter for one branding.
type Renderer struct {
	branding   Branding
	website    *template.Template
	newsletter *template.Template
}

// NewRenderer creates a renderer with the built-in templates.
func NewRenderer(branding Branding) *Renderer {
	return &Renderer{
		branding:   branding,
		website:    template.Must(template.New("website").Parse(websiteHTMLTemplate)),
		newsletter: template.Must(template.New("newsletter").Parse(newsletterHTMLTemplate)),
	}
}

// Website renders the public landing page: up to 12 products and up to 10
// industries, in the order the classification produced them.
func (r *Renderer) Website(result classify.Result, now time.Time) (string, error) {
	view := r.page(now)
	view.Products = products(result.Products, MaxWebsiteProducts)
	view.Industries = lo.Map(
		lo.Slice(result.Industries, 0, MaxWebsiteIndustries),
		func(b classify.Bucket, _ int) industryView {
			return industryView{Name: b.Industry, Count: len(b.Articles)}
		},
	)

	return execute(r.website, view)
}

// Newsletter renders the email body with the top 5 products numbered from 1.
func (r *Renderer) Newsletter(result classify.Result, now time.Time) (string, error) {
	view := r.page(now)
	view.Products = products(result.Products, MaxNewsletterProducts)

	return execute(r.newsletter, view)
}

func (r *Renderer) page(now time.Time) pageView {
	return pageView{
		Brand: brandView{
			Name:      r.branding.CompanyName,
			Tagline:   r.branding.Tagline,
			Primary:   template.CSS(r.branding.PrimaryColor),
			Secondary: template.CSS(r.branding.SecondaryColor),
			Contact:   r.branding.ContactEmail,
			HubURL:    r.branding.HubURL,
		},
		Date: now.Format("January 02, 2006"),
		Year: now.Year(),
	}
}

func products(items []articles.Article, limit int) []productView {
	return lo.Map(lo.Slice(items, 0, limit), func(a articles.Article, i int) productView {
		return productView{
			Number: i + 1,
			Title:  Truncate(a.Title, TitleLimit),
			Source: a.Source,
			URL:    a.URL,
		}
	})
}

func execute(tmpl *template.Template, view pageView) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
