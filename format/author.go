/*
Package format turns content records into HTML fragments for the page templates.

Every function is pure and never fails: missing fields render as their
defaults. Values are inserted into the markup as written, so front matter may
carry inline HTML.
*/
package format

import (
	"fmt"
	"strings"

	"github.com/ancientlore/homepage/content"
)

// socialLabels maps the supported social icons to their accessible labels.
// Other icons are not rendered.
var socialLabels = map[string]string{
	"envelope": "Email",
	"twitter":  "Twitter",
	"github":   "GitHub",
	"linkedin": "LinkedIn",
	"cv":       "CV",
}

// skillIcons maps skill names to Font Awesome icons.
var skillIcons = map[string]string{
	"Machine Learning/Deep Learning": "fa-python",
	"Data Science":                   "fa-chart-line",
	"System/Architecture":            "fa-database",
	"Phsyics":                        "fa-atom",
	"Hiking":                         "fa-person-hiking",
	"Reading":                        "fa-book",
	"Writing":                        "fa-pen",
	"Cloudherd":                      "fa-cloud",
}

const defaultSkillIcon = "fa-circle"

// SocialLinks renders the author's social links, one per line.
func SocialLinks(a *content.Author) string {
	var links []string
	for _, s := range a.Social {
		label, ok := socialLabels[s.Icon]
		if !ok {
			continue
		}
		icon := fmt.Sprintf(`<i class="%s fa-%s"></i>`, s.IconPack.Or("fas"), s.Icon)
		if s.Icon == "cv" {
			icon = `<i class="ai ai-cv"></i>`
		}
		links = append(links, fmt.Sprintf(`<a href="%s" aria-label="%s">%s</a>`, s.Link.Or("#"), label, icon))
	}
	return strings.Join(links, "\n")
}

// skillIcon returns the icon for a skill name.
func skillIcon(name string) string {
	if icon, ok := skillIcons[name]; ok {
		return icon
	}
	return defaultSkillIcon
}

// Skills renders one column per skill group with a progress bar per skill.
// Percentages are used as written.
func Skills(a *content.Author) string {
	var sb strings.Builder
	for _, g := range a.Skills {
		colorClass := "hobbies"
		if g.Name == "Technical" {
			colorClass = "technical"
		}
		fmt.Fprintf(&sb, `<div class="skill-column"><h4 class="skill-group-title">%s</h4>`, strings.ToUpper(g.Name))
		for _, item := range g.Items {
			fmt.Fprintf(&sb, `
                <div class="skill-item">
                    <div class="skill-header">
                        <i class="%s %s"></i>
                        <span class="skill-name">%s</span>
                    </div>
                    <div class="skill-bar skill-bar-%s">
                        <div class="skill-progress" style="width: %s%%"></div>
                    </div>
                </div>
                `, item.IconPack.Or("fas"), skillIcon(item.Name), strings.ToUpper(item.Name), colorClass, item.Percent.Or("0"))
		}
		sb.WriteString(`</div>`)
	}
	return sb.String()
}

// Interests renders the interests as list items.
func Interests(a *content.Author) string {
	var sb strings.Builder
	for _, interest := range a.Interests {
		fmt.Fprintf(&sb, `<li><i class="fas fa-bookmark"></i> %s</li>`, interest)
	}
	return sb.String()
}

// Education renders the author's courses.
func Education(a *content.Author) string {
	var sb strings.Builder
	for _, c := range a.Education.Courses {
		fmt.Fprintf(&sb, `
            <div class="education-item">
                <i class="fas fa-graduation-cap"></i>
                <div class="education-content">
                    <strong>%s, %s</strong>
                    <p>%s</p>
                </div>
            </div>
            `, c.Course, c.Year, c.Institution)
	}
	return sb.String()
}
