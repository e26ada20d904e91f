// Package build runs the whole homepage generation: it loads the content,
// renders the pages and copies the assets into the output folder.
package build

import (
	"fmt"
	"log"
	"os"

	"github.com/ancientlore/homepage/assets"
	"github.com/ancientlore/homepage/config"
	"github.com/ancientlore/homepage/content"
	"github.com/ancientlore/homepage/page"
)

// Options name the folders used by Run.
type Options struct {
	ContentDir  string
	OutputDir   string
	TemplateDir string
	Config      *config.Config // defaults if nil
}

// Run generates the site. Any error stops the run; files already written
// are left in place.
func Run(opts Options) error {
	log.Print("Starting homepage generation...")
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	contentFS := os.DirFS(opts.ContentDir)
	templateFS := os.DirFS(opts.TemplateDir)

	log.Print("Loading content")
	site, err := content.Load(contentFS)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	log.Printf("Found %d publications and %d projects", len(site.Publications), len(site.Projects))

	r, err := page.New(templateFS, opts.OutputDir, opts.Config)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	log.Print("Generating pages")
	if err = r.Render(site); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	log.Print("Copying static files")
	if err = assets.CopyStatic(templateFS, opts.OutputDir); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	log.Print("Copying assets")
	if err = assets.Copy(contentFS, opts.OutputDir); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	log.Printf("Site generated in %q", opts.OutputDir)
	return nil
}
