package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ancientlore/homepage/content"
)

// PlaceholderImage is shown on cards for projects without a featured image.
const PlaceholderImage = "placeholder.png"

// DetailPath returns the output path of a project's detail page.
func DetailPath(p *content.Project) string {
	return "projects/" + p.Slug + ".html"
}

// inlineMarkdown renders a single paragraph of markdown without its paragraph
// tags. Every <p> and </p> is removed, so text with several paragraphs runs
// together.
func inlineMarkdown(src string) string {
	html := content.Markdown(src)
	html = strings.ReplaceAll(html, "<p>", "")
	return strings.ReplaceAll(html, "</p>", "")
}

// ProjectCard renders a project card. base is prepended to the image and
// detail page links. Projects with an external link point there in a new
// window; the others point to their detail page.
func ProjectCard(p *content.Project, base string) string {
	tags := strings.Join(p.Tags, ", ")
	title := p.Title.String()

	link := base + DetailPath(p)
	target := ""
	text := "View Details →"
	if p.ExternalLink != "" {
		link = p.ExternalLink
		target = ` target="_blank"`
		text = "View Project →"
	}

	return fmt.Sprintf(`
        <div class="project-card" data-tags="%s">
            <img src="%s%s" alt="%s" class="project-image">
            <div class="project-content">
                <h3>%s</h3>
                <p>%s</p>
                <div class="project-tags">%s</div>
                <a href="%s" class="project-link"%s>%s</a>
            </div>
        </div>
        `, tags, base, p.FeaturedImage.Or(PlaceholderImage), title, title, inlineMarkdown(p.Summary), tags, link, target, text)
}

// ProjectCards renders a card for each project in order.
func ProjectCards(projs []content.Project, base string) string {
	var sb strings.Builder
	for i := range projs {
		sb.WriteString(ProjectCard(&projs[i], base))
	}
	return sb.String()
}

// ProjectTags renders a project's tags as spans.
func ProjectTags(p *content.Project) string {
	var sb strings.Builder
	for _, tag := range p.Tags {
		fmt.Fprintf(&sb, `<span>%s</span>`, tag)
	}
	return sb.String()
}

// ProjectGallery renders a project's images for its detail page, which is
// one folder below the output root.
func ProjectGallery(p *content.Project) string {
	var sb strings.Builder
	for _, img := range p.Images {
		fmt.Fprintf(&sb, `<img src="../%s" alt="%s screenshot">`, img, p.Title.String())
	}
	return sb.String()
}

// TagFilters renders one filter tag per distinct project tag, in
// alphabetical order.
func TagFilters(projs []content.Project) string {
	seen := make(map[string]bool)
	var tags []string
	for i := range projs {
		for _, tag := range projs[i].Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	var sb strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&sb, `<span class="filter-tag" data-tag="%s">%s</span>`, tag, tag)
	}
	return sb.String()
}
