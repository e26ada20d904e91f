/*
Package content loads the markdown files of a personal homepage.

The content directory follows a fixed layout:

	authors/admin/_index.md      the site owner
	authors/admin/avatar.jpg     optional portrait
	publication/<slug>/index.md  one folder per publication
	project/<slug>/index.md      one folder per project
	_index.md                    site configuration
	resume.pdf                   optional résumé

Nothing in the layout is required. Missing files and folders leave the
corresponding record or collection empty, and a publication or project folder
without an index.md is skipped.
*/
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/ancientlore/homepage/frontmatter"
)

// Names of the files and folders in the content directory.
const (
	AuthorDir      = "authors/admin"
	AuthorFile     = AuthorDir + "/_index.md"
	AvatarFile     = "avatar.jpg"
	PublicationDir = "publication"
	ProjectDir     = "project"
	ConfigFile     = "_index.md"
	IndexFile      = "index.md"
	FeaturedImage  = "featured.png"
	ResumeFile     = "resume.pdf"
)

// Load reads the content tree in fsys. Publications and projects are sorted
// newest first.
func Load(fsys fs.FS) (*Site, error) {
	var (
		site Site
		err  error
	)
	if err = loadAuthor(fsys, &site.Author); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if site.Publications, err = loadPublications(fsys); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if site.Projects, err = loadProjects(fsys); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err = loadConfig(fsys, &site.Config); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	SortByDate(site.Publications)
	SortByDate(site.Projects)
	return &site, nil
}

// exists reports whether name is present in fsys.
func exists(fsys fs.FS, name string) (bool, error) {
	_, err := fs.Stat(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// readMarkdown reads the named file, decodes its front matter into v, and
// returns the common record data along with the parsed document.
func readMarkdown(fsys fs.FS, name string, v any) (Record, frontmatter.Document, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Record{}, frontmatter.Document{}, fmt.Errorf("readMarkdown: %w", err)
	}
	doc := frontmatter.Parse(string(b))
	if err := doc.Decode(v); err != nil {
		log.Printf("readMarkdown: ignoring front matter in %s: %s", name, err)
	}
	return Record{
		Fields:      doc.Fields(),
		ContentHTML: Markdown(doc.Body),
		ContentRaw:  doc.Body,
	}, doc, nil
}

// itemDirs returns the names of the folders under dir that contain an
// index.md, in lexical order. A missing dir yields nothing.
func itemDirs(fsys fs.FS, dir string) ([]string, error) {
	ok, err := exists(fsys, dir)
	if err != nil || !ok {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var slugs []string
	for _, entry := range entries {
		fi, err := fs.Stat(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			continue
		}
		ok, err := exists(fsys, path.Join(dir, entry.Name(), IndexFile))
		if err != nil {
			return nil, err
		}
		if ok {
			slugs = append(slugs, entry.Name())
		}
	}
	return slugs, nil
}

// featuredImage returns the output relative path of the featured image of the
// item in dir/slug. The Text is absent if there is none.
func featuredImage(fsys fs.FS, dir, slug string) (Text, error) {
	p := dir + "/" + slug + "/" + FeaturedImage
	ok, err := exists(fsys, p)
	if err != nil || !ok {
		return Text{}, err
	}
	return TextOf(p), nil
}

func loadAuthor(fsys fs.FS, a *Author) error {
	ok, err := exists(fsys, AuthorFile)
	if err != nil || !ok {
		return err
	}
	a.Record, _, err = readMarkdown(fsys, AuthorFile, a)
	if err != nil {
		return err
	}
	ok, err = exists(fsys, AuthorDir+"/"+AvatarFile)
	if err != nil {
		return err
	}
	if ok {
		a.Avatar = AvatarFile
	}
	return nil
}

func loadPublications(fsys fs.FS) ([]Publication, error) {
	slugs, err := itemDirs(fsys, PublicationDir)
	if err != nil {
		return nil, fmt.Errorf("loadPublications: %w", err)
	}
	pubs := make([]Publication, 0, len(slugs))
	for _, slug := range slugs {
		var p Publication
		p.Record, _, err = readMarkdown(fsys, path.Join(PublicationDir, slug, IndexFile), &p)
		if err != nil {
			return nil, fmt.Errorf("loadPublications: %w", err)
		}
		p.Slug = slug
		img, err := featuredImage(fsys, PublicationDir, slug)
		if err != nil {
			return nil, fmt.Errorf("loadPublications: %w", err)
		}
		if img.set {
			p.FeaturedImage = img
		}
		pubs = append(pubs, p)
	}
	return pubs, nil
}

func loadProjects(fsys fs.FS) ([]Project, error) {
	slugs, err := itemDirs(fsys, ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("loadProjects: %w", err)
	}
	projs := make([]Project, 0, len(slugs))
	for _, slug := range slugs {
		var (
			p   Project
			doc frontmatter.Document
		)
		p.Record, doc, err = readMarkdown(fsys, path.Join(ProjectDir, slug, IndexFile), &p)
		if err != nil {
			return nil, fmt.Errorf("loadProjects: %w", err)
		}
		p.Slug = slug
		img, err := featuredImage(fsys, ProjectDir, slug)
		if err != nil {
			return nil, fmt.Errorf("loadProjects: %w", err)
		}
		if img.set {
			p.FeaturedImage = img
		}
		if doc.Has("gallery") {
			p.Images = make([]string, 0, len(p.Gallery))
			for _, name := range p.Gallery {
				p.Images = append(p.Images, ProjectDir+"/"+slug+"/"+name)
			}
		} else {
			p.Images, err = discoverImages(fsys, slug)
			if err != nil {
				return nil, fmt.Errorf("loadProjects: %w", err)
			}
		}
		projs = append(projs, p)
	}
	return projs, nil
}

// discoverImages lists the PNG files of a project other than its featured
// image. fs.ReadDir sorts by file name, so the order is lexical rather than
// whatever the underlying file system enumerates.
func discoverImages(fsys fs.FS, slug string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, path.Join(ProjectDir, slug))
	if err != nil {
		return nil, err
	}
	images := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".png") && name != FeaturedImage {
			images = append(images, ProjectDir+"/"+slug+"/"+name)
		}
	}
	return images, nil
}

func loadConfig(fsys fs.FS, c *SiteConfig) error {
	ok, err := exists(fsys, ConfigFile)
	if err != nil || !ok {
		return err
	}
	c.Record, _, err = readMarkdown(fsys, ConfigFile, c)
	return err
}
