package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record holds what every markdown content file carries besides its typed
// front matter.
type Record struct {
	Slug        string         // directory name, empty for single files
	Fields      map[string]any // raw front matter
	ContentHTML string         // rendered body
	ContentRaw  string         // body as written, trimmed
}

// Text is an optional string value from front matter. Absent and null values
// fall back to a caller supplied default.
type Text struct {
	value string
	set   bool
}

// TextOf returns a present Text holding s.
func TextOf(s string) Text {
	return Text{value: s, set: true}
}

// UnmarshalYAML accepts any scalar and keeps it as written.
func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{fmt.Sprintf("line %d: cannot unmarshal %s into a string", n.Line, n.ShortTag())}}
	}
	if n.ShortTag() == "!!null" {
		*t = Text{}
		return nil
	}
	*t = TextOf(n.Value)
	return nil
}

// Or returns the value, or def when absent.
func (t Text) Or(def string) string {
	if t.set {
		return t.value
	}
	return def
}

// String returns the value, or "" when absent.
func (t Text) String() string {
	return t.value
}

// Link is an extra named link on a publication.
type Link struct {
	URL  Text `yaml:"url"`
	Name Text `yaml:"name"`
}

// Publication is a paper or talk from publication/<slug>/index.md.
type Publication struct {
	Record `yaml:"-"`

	Title            string   `yaml:"title"`
	Date             string   `yaml:"date"` // ISO 8601 as written
	Authors          []string `yaml:"authors"`
	Publication      string   `yaml:"publication"`
	PublicationShort string   `yaml:"publication_short"`
	URLPDF           string   `yaml:"url_pdf"`
	DOI              string   `yaml:"doi"`
	Links            []Link   `yaml:"links"`
	FeaturedImage    Text     `yaml:"featured_image"`
}

// SortDate implements Dated.
func (p Publication) SortDate() string {
	return p.Date
}

// Project is a portfolio entry from project/<slug>/index.md.
type Project struct {
	Record `yaml:"-"`

	Title         Text     `yaml:"title"`
	Date          string   `yaml:"date"`
	Tags          []string `yaml:"tags"`
	Summary       string   `yaml:"summary"`
	ExternalLink  string   `yaml:"external_link"`
	Gallery       []string `yaml:"gallery"`
	FeaturedImage Text     `yaml:"featured_image"`

	// Images are paths relative to the output root, from the gallery list or
	// discovered in the project directory.
	Images []string `yaml:"-"`
}

// SortDate implements Dated.
func (p Project) SortDate() string {
	return p.Date
}

// Organization is an employer or affiliation.
type Organization struct {
	Name string `yaml:"name"`
	URL  Text   `yaml:"url"`
}

// Social is a profile link shown under the author name.
type Social struct {
	Icon     string `yaml:"icon"`
	IconPack Text   `yaml:"icon_pack"`
	Link     Text   `yaml:"link"`
}

// SkillGroup is a named column of skills.
type SkillGroup struct {
	Name  string  `yaml:"name"`
	Items []Skill `yaml:"items"`
}

// Skill is one progress bar. Percent is kept as written.
type Skill struct {
	Name     string `yaml:"name"`
	Percent  Text   `yaml:"percent"`
	IconPack Text   `yaml:"icon_pack"`
}

// Course is a degree or course entry.
type Course struct {
	Course      string `yaml:"course"`
	Year        string `yaml:"year"`
	Institution string `yaml:"institution"`
}

// Education lists courses.
type Education struct {
	Courses []Course `yaml:"courses"`
}

// Author is the site owner from authors/admin/_index.md.
type Author struct {
	Record `yaml:"-"`

	Title             string         `yaml:"title"`
	NamePronunciation Text           `yaml:"name_pronunciation"`
	Role              string         `yaml:"role"`
	Organizations     []Organization `yaml:"organizations"`
	Social            []Social       `yaml:"social"`
	Skills            []SkillGroup   `yaml:"skills"`
	Interests         []string       `yaml:"interests"`
	Education         Education      `yaml:"education"`
	Avatar            string         `yaml:"avatar"`
}

// Organization returns the first organization, or an empty one.
func (a *Author) Organization() Organization {
	if len(a.Organizations) == 0 {
		return Organization{}
	}
	return a.Organizations[0]
}

// Address is a postal address. It is present when the mapping has any keys.
type Address struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`

	present bool
}

// UnmarshalYAML records presence before decoding the fields.
func (a *Address) UnmarshalYAML(n *yaml.Node) error {
	type plain Address
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*a = Address(p)
	a.present = n.Kind == yaml.MappingNode && len(n.Content) > 0
	return nil
}

// Present reports whether the address was given.
func (a Address) Present() bool {
	return a.present
}

// Contact is the content of the contact section of the site config.
type Contact struct {
	Email      string  `yaml:"email"`
	Address    Address `yaml:"address"`
	Directions string  `yaml:"directions"`
}

// Section is a homepage block from the site config. Content is decoded
// according to Block.
type Section struct {
	Block   string    `yaml:"block"`
	Content yaml.Node `yaml:"content"`
}

// SiteConfig is the site configuration from _index.md.
type SiteConfig struct {
	Record `yaml:"-"`

	Sections []Section `yaml:"sections"`
}

// Contact returns the content of the first contact section. It is empty when
// there is no such section or its content cannot be read.
func (c *SiteConfig) Contact() Contact {
	var contact Contact
	for _, s := range c.Sections {
		if s.Block != "contact" {
			continue
		}
		if s.Content.Kind == yaml.MappingNode {
			_ = s.Content.Decode(&contact)
		}
		break
	}
	return contact
}

// Site holds everything loaded from the content directory.
type Site struct {
	Author       Author
	Publications []Publication // newest first
	Projects     []Project     // newest first
	Config       SiteConfig
}
