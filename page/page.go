package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ancientlore/homepage/config"
	"github.com/ancientlore/homepage/content"
	"github.com/ancientlore/homepage/format"
)

// Common holds the values every page receives.
type Common struct {
	Title      string // page title
	SiteTitle  string
	AuthorName string
	Year       int    // current year, for the footer
	BaseURL    string // prefix from the page back to the output root
}

// Index is passed to the index.html template.
type Index struct {
	Common

	NamePronunciation string // the author title
	Role              string
	OrgName           string
	OrgURL            string
	Avatar            string
	SocialLinks       template.HTML
	BioContent        template.HTML

	SkillsContent    template.HTML
	InterestsContent template.HTML
	EducationContent template.HTML

	PublicationsPreview template.HTML
	ProjectsPreview     template.HTML

	ContactContent template.HTML
}

// Publications is passed to the publications.html template.
type Publications struct {
	Common

	PublicationsContent template.HTML
	YearFilters         template.HTML
}

// Projects is passed to the projects.html template.
type Projects struct {
	Common

	ProjectsContent template.HTML
	TagFilters      template.HTML
}

// ProjectDetail is passed to the project_detail.html template.
type ProjectDetail struct {
	Common

	ProjectTitle   string
	ProjectTags    template.HTML
	ExternalLink   string
	FeaturedImage  string // empty when the project has none
	ProjectContent template.HTML
	ProjectImages  template.HTML // empty when the project has none
}

// bioMarkers are attribute annotations removed from the author biography,
// as written and as escaped by the markdown renderer.
var bioMarkers = []string{
	`{style="text-align: justify;"}`,
	`{style=&quot;text-align: justify;&quot;}`,
}

// Renderer writes pages into an output folder.
type Renderer struct {
	tpl *template.Template
	out string
	cfg *config.Config
	now func() time.Time
}

// New parses the templates in templates and returns a Renderer writing to
// the folder out, which must exist.
func New(templates fs.FS, out string, cfg *config.Config) (*Renderer, error) {
	tpl, err := loadTemplates(templates)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Renderer{tpl: tpl, out: out, cfg: cfg, now: time.Now}, nil
}

// Render writes every page of the site.
func (r *Renderer) Render(site *content.Site) error {
	if err := r.Index(site); err != nil {
		return err
	}
	if err := r.Publications(site); err != nil {
		return err
	}
	if err := r.Projects(site); err != nil {
		return err
	}
	return r.ProjectDetails(site)
}

// common returns the shared page values.
func (r *Renderer) common(site *content.Site, title, base string) Common {
	return Common{
		Title:      title,
		SiteTitle:  r.cfg.SiteTitle,
		AuthorName: site.Author.NamePronunciation.Or("Your Name"),
		Year:       r.now().Year(),
		BaseURL:    base,
	}
}

// write executes the named template into the output file name.
func (r *Renderer) write(name, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(r.out, filepath.FromSlash(name)), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	log.Printf("Wrote %s", name)
	return nil
}

// head returns at most n items.
func head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Index writes index.html, previewing the newest publications and projects.
func (r *Renderer) Index(site *content.Site) error {
	a := &site.Author
	bio := a.ContentHTML
	for _, m := range bioMarkers {
		bio = strings.ReplaceAll(bio, m, "")
	}
	org := a.Organization()
	data := Index{
		Common:            r.common(site, a.NamePronunciation.Or(r.cfg.SiteTitle), ""),
		NamePronunciation: a.Title,
		Role:              a.Role,
		OrgName:           org.Name,
		OrgURL:            org.URL.Or("#"),
		Avatar:            a.Avatar,
		SocialLinks:       template.HTML(format.SocialLinks(a)),
		BioContent:        template.HTML(bio),

		SkillsContent:    template.HTML(format.Skills(a)),
		InterestsContent: template.HTML(format.Interests(a)),
		EducationContent: template.HTML(format.Education(a)),

		PublicationsPreview: template.HTML(format.PublicationItems(head(site.Publications, r.cfg.Preview.Publications))),
		ProjectsPreview:     template.HTML(format.ProjectCards(head(site.Projects, r.cfg.Preview.Projects), "")),

		ContactContent: template.HTML(format.Contact(&site.Config, format.Schedule(r.cfg.Schedule))),
	}
	return r.write("index.html", IndexTemplate, data)
}

// Publications writes publications.html.
func (r *Renderer) Publications(site *content.Site) error {
	data := Publications{
		Common:              r.common(site, "Publications", ""),
		PublicationsContent: template.HTML(format.PublicationItems(site.Publications)),
		YearFilters:         template.HTML(format.YearFilters(site.Publications)),
	}
	return r.write("publications.html", PublicationsTemplate, data)
}

// Projects writes projects.html.
func (r *Renderer) Projects(site *content.Site) error {
	data := Projects{
		Common:          r.common(site, "Projects", ""),
		ProjectsContent: template.HTML(format.ProjectCards(site.Projects, "")),
		TagFilters:      template.HTML(format.TagFilters(site.Projects)),
	}
	return r.write("projects.html", ProjectsTemplate, data)
}

// ProjectDetails writes projects/<slug>.html for every project.
func (r *Renderer) ProjectDetails(site *content.Site) error {
	if err := os.MkdirAll(filepath.Join(r.out, "projects"), 0755); err != nil {
		return fmt.Errorf("ProjectDetails: %w", err)
	}
	for i := range site.Projects {
		p := &site.Projects[i]
		data := ProjectDetail{
			Common:         r.common(site, p.Title.Or("Project"), "../"),
			ProjectTitle:   p.Title.String(),
			ProjectTags:    template.HTML(format.ProjectTags(p)),
			ExternalLink:   p.ExternalLink,
			ProjectContent: template.HTML(p.ContentHTML),
			ProjectImages:  template.HTML(format.ProjectGallery(p)),
		}
		if img := p.FeaturedImage.String(); img != "" {
			data.FeaturedImage = "../" + img
		}
		if err := r.write(format.DetailPath(p), ProjectDetailTemplate, data); err != nil {
			return err
		}
	}
	return nil
}
