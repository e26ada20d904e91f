package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ancientlore/homepage/content"
)

// dateLayouts are the ISO 8601 forms accepted for publication dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// Year returns the four digit year of an ISO 8601 date, or "" if the date
// cannot be parsed. A trailing Z is read as a zero UTC offset.
func Year(date string) string {
	if date == "" {
		return ""
	}
	date = strings.ReplaceAll(date, "Z", "+00:00")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	return ""
}

// PublicationItem renders a publication with its links and year badge.
func PublicationItem(p *content.Publication) string {
	var links []string
	if p.URLPDF != "" {
		links = append(links, fmt.Sprintf(`<a href="%s" class="pub-link"><i class="fas fa-file-pdf"></i> PDF</a>`, p.URLPDF))
	}
	if p.DOI != "" {
		links = append(links, fmt.Sprintf(`<a href="%s" class="pub-link"><i class="fas fa-link"></i> DOI</a>`, p.DOI))
	}
	for _, l := range p.Links {
		links = append(links, fmt.Sprintf(`<a href="%s" class="pub-link"><i class="fas fa-external-link-alt"></i> %s</a>`, l.URL.Or("#"), l.Name.Or("Link")))
	}

	year := Year(p.Date)
	badge := ""
	if year != "" {
		badge = fmt.Sprintf(`<div class="pub-year">%s</div>`, year)
	}

	return fmt.Sprintf(`
        <div class="publication-item" data-year="%s">
            <div class="pub-content">
                <h4 class="pub-title">%s</h4>
                <p class="pub-authors">%s</p>
                <p class="pub-venue">%s %s</p>
                <div class="pub-links">%s</div>
            </div>
            %s
        </div>
        `, year, p.Title, strings.Join(p.Authors, ", "), p.Publication, p.PublicationShort, strings.Join(links, " "), badge)
}

// PublicationItems renders each publication in order.
func PublicationItems(pubs []content.Publication) string {
	var sb strings.Builder
	for i := range pubs {
		sb.WriteString(PublicationItem(&pubs[i]))
	}
	return sb.String()
}

// YearFilters renders one filter tag per distinct publication year, newest
// first. Publications without a readable date are left out.
func YearFilters(pubs []content.Publication) string {
	seen := make(map[int]bool)
	var years []int
	for i := range pubs {
		y, err := strconv.Atoi(Year(pubs[i].Date))
		if err != nil || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	var sb strings.Builder
	for _, y := range years {
		fmt.Fprintf(&sb, `<span class="filter-tag" data-year="%d">%d</span>`, y, y)
	}
	return sb.String()
}
