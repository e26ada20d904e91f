package format

import (
	"fmt"
	"strings"

	"github.com/ancientlore/homepage/content"
)

// Schedule is the meeting link shown at the end of the contact block.
type Schedule struct {
	URL  string
	Text string
}

// Contact renders the contact block from the first contact section of the
// site config. Without one, the block still has an empty email line and the
// scheduling link.
func Contact(cfg *content.SiteConfig, s Schedule) string {
	c := cfg.Contact()
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p><i class="fas fa-envelope"></i> %s</p>`, c.Email)
	if c.Address.Present() {
		fmt.Fprintf(&sb, `<p><i class="fas fa-map-marker-alt"></i> %s,
                       %s,
                       %s</p>`, c.Address.Street, c.Address.City, c.Address.Country)
	}
	if c.Directions != "" {
		fmt.Fprintf(&sb, `<p><i class="fas fa-door-open"></i> %s</p>`, c.Directions)
	}
	fmt.Fprintf(&sb, `<p class="schedule-link"><i class="fas fa-calendar-alt"></i> %s
                   <a href="%s" target="_blank">Schedule a meeting</a></p>`, s.Text, s.URL)
	return sb.String()
}
