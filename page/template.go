/*
Package page assembles the pages of the homepage and renders them through
HTML templates.

Templates are the "*.html" files of the template folder, parsed together with
the standard html/template package. Four templates are required, one per page:

	index.html           the home page (Index)
	publications.html    all publications (Publications)
	projects.html        all projects (Projects)
	project_detail.html  one page per project (ProjectDetail)

Each template receives the matching struct from this package. Fields of type
template.HTML hold fragments from the format package and are inserted as is.
Templates may also use these helper functions:

	join(parts ...string) string
		The same as path.Join
	trimsuffix(string, string) string
		The same as strings.TrimSuffix
	trimprefix(string, string) string
		The same as strings.TrimPrefix
	trimspace(string) string
		The same as strings.TrimSpace
	upper(string) string
		The same as strings.ToUpper
	markdown(string) template.HTML
		Render markdown text into HTML
	now() time.Time
		Current time
*/
package page

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/ancientlore/homepage/content"
)

// Names of the page templates.
const (
	IndexTemplate         = "index.html"
	PublicationsTemplate  = "publications.html"
	ProjectsTemplate      = "projects.html"
	ProjectDetailTemplate = "project_detail.html"
)

// markdown renders markdown for use in templates.
func markdown(s string) template.HTML {
	return template.HTML(content.Markdown(s))
}

// loadTemplates parses the HTML templates in fsys.
func loadTemplates(fsys fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":       path.Join,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"upper":      strings.ToUpper,
		"markdown":   markdown,
		"now":        time.Now,
	}
	tpl, err := template.New("homepage").Funcs(funcMap).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("loadTemplates: %w", err)
	}
	return tpl, nil
}
