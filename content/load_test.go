package content

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"authors/admin/_index.md": {Data: []byte(`---
title: Jane Doe
name_pronunciation: Jane
role: Researcher
organizations:
  - name: Example University
social:
  - icon: github
    link: https://github.com/jane
interests: [Systems, Hiking]
education:
  courses:
    - course: PhD
      year: 2020
      institution: Example University
---
Hello **world**.
`)},
		"authors/admin/avatar.jpg": {Data: []byte("jpg")},
		"publication/old/index.md": {Data: []byte("---\ntitle: Old\ndate: \"2019-01-01\"\n---\n")},
		"publication/new/index.md": {Data: []byte("---\ntitle: New\ndate: 2023-05-01T00:00:00Z\n---\nAbstract\n")},
		"publication/new/featured.png": {Data: []byte("png")},
		"publication/nodate/index.md":  {Data: []byte("---\ntitle: NoDate\n---\n")},
		"publication/empty/notes.txt":  {Data: []byte("skipped")},
		"publication/stray.md":         {Data: []byte("not a folder")},
		"project/alpha/index.md":       {Data: []byte("---\ntitle: Alpha\ndate: \"2021-01-01\"\ntags: [go]\n---\n")},
		"project/alpha/featured.png":   {Data: []byte("png")},
		"project/alpha/b.png":          {Data: []byte("png")},
		"project/alpha/a.png":          {Data: []byte("png")},
		"project/alpha/photo.jpg":      {Data: []byte("jpg")},
		"project/beta/index.md":        {Data: []byte("---\ntitle: Beta\ndate: \"2022-01-01\"\ngallery: [one.png, two.png]\n---\n")},
		"project/beta/other.png":       {Data: []byte("png")},
		"_index.md": {Data: []byte(`---
sections:
  - block: hero
    content: Welcome
  - block: contact
    content:
      email: jane@example.com
      address:
        city: Edinburgh
---
`)},
	}
}

func TestLoad(t *testing.T) {
	site, err := Load(testContent())
	if err != nil {
		t.Fatal(err)
	}

	a := site.Author
	if a.Title != "Jane Doe" || a.NamePronunciation.Or("") != "Jane" || a.Role != "Researcher" {
		t.Errorf("Unexpected author %#v", a)
	}
	if a.Avatar != "avatar.jpg" {
		t.Errorf("Expected avatar.jpg, got %q", a.Avatar)
	}
	if a.Organization().Name != "Example University" || a.Organization().URL.Or("#") != "#" {
		t.Errorf("Unexpected organization %#v", a.Organization())
	}
	if len(a.Education.Courses) != 1 || a.Education.Courses[0].Year != "2020" {
		t.Errorf("Unexpected courses %#v", a.Education.Courses)
	}
	if !strings.Contains(a.ContentHTML, "<strong>world</strong>") {
		t.Errorf("Body not rendered: %q", a.ContentHTML)
	}
	if a.ContentRaw != "Hello **world**." {
		t.Errorf("Unexpected raw body %q", a.ContentRaw)
	}

	var slugs []string
	for _, p := range site.Publications {
		slugs = append(slugs, p.Slug)
	}
	if !reflect.DeepEqual(slugs, []string{"new", "old", "nodate"}) {
		t.Errorf("Unexpected publication order %v", slugs)
	}
	if site.Publications[0].FeaturedImage.String() != "publication/new/featured.png" {
		t.Errorf("Unexpected featured image %q", site.Publications[0].FeaturedImage)
	}
	if site.Publications[0].Fields["title"] != "New" {
		t.Errorf("Raw fields missing: %#v", site.Publications[0].Fields)
	}

	if len(site.Projects) != 2 || site.Projects[0].Slug != "beta" || site.Projects[1].Slug != "alpha" {
		t.Fatalf("Unexpected projects %#v", site.Projects)
	}
	beta, alpha := site.Projects[0], site.Projects[1]
	if !reflect.DeepEqual(beta.Images, []string{"project/beta/one.png", "project/beta/two.png"}) {
		t.Errorf("Gallery images not used: %v", beta.Images)
	}
	if beta.FeaturedImage.Or("placeholder.png") != "placeholder.png" {
		t.Errorf("Unexpected featured image for beta")
	}
	if !reflect.DeepEqual(alpha.Images, []string{"project/alpha/a.png", "project/alpha/b.png"}) {
		t.Errorf("Unexpected discovered images: %v", alpha.Images)
	}

	c := site.Config.Contact()
	if c.Email != "jane@example.com" || !c.Address.Present() || c.Address.City != "Edinburgh" {
		t.Errorf("Unexpected contact %#v", c)
	}
}

func TestLoadEmpty(t *testing.T) {
	site, err := Load(fstest.MapFS{})
	if err != nil {
		t.Fatal(err)
	}
	if len(site.Publications) != 0 || len(site.Projects) != 0 {
		t.Error("Expected empty collections")
	}
	if site.Author.Title != "" || len(site.Author.Fields) != 0 {
		t.Error("Expected an empty author")
	}
	if c := site.Config.Contact(); c.Email != "" || c.Address.Present() {
		t.Errorf("Expected an empty contact, got %#v", c)
	}
}

func TestLoadMalformedFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"project/x/index.md": {Data: []byte("---\ntitle: [oops\n---\nBody")},
		"project/y/index.md": {Data: []byte("---\ntitle: Y\ntags: nolist\n---\nBody")},
	}
	site, err := Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if len(site.Projects) != 2 {
		t.Fatalf("Expected 2 projects, got %d", len(site.Projects))
	}
	for _, p := range site.Projects {
		switch p.Slug {
		case "x":
			if p.ContentRaw != "---\ntitle: [oops\n---\nBody" {
				t.Errorf("Expected original text as body, got %q", p.ContentRaw)
			}
			if p.Title.Or("Project") != "Project" {
				t.Errorf("Expected no title")
			}
		case "y":
			if p.Title.String() != "Y" || p.Tags != nil {
				t.Errorf("Unexpected project %#v", p)
			}
		}
	}
}

func TestContactMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"_index.md": {Data: []byte("---\nsections:\n  - block: about\n---\n")},
	}
	site, err := Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if c := site.Config.Contact(); c != (Contact{}) {
		t.Errorf("Expected empty contact, got %#v", c)
	}
}
