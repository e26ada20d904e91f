// Package assets copies images and other files into the output folder unchanged.
// Every source is optional; missing files are skipped.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ancientlore/homepage/content"
)

// staticFiles are copied from the template folder to the output root.
var staticFiles = []string{"style.css", "script.js"}

// imageExtensions are the project files copied to the output.
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// copyFile copies name from fsys to the file dst, replacing it.
func copyFile(fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("copyFile: %w", err)
	}
	defer src.Close()
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("copyFile: %w", err)
	}
	if _, err = io.Copy(f, src); err != nil {
		f.Close()
		return fmt.Errorf("copyFile: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("copyFile: %w", err)
	}
	return nil
}

// copyIfExists copies name to dst if name is a regular file in fsys.
func copyIfExists(fsys fs.FS, name, dst string) error {
	fi, err := fs.Stat(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("copyIfExists: %w", err)
	}
	if fi.IsDir() {
		return nil
	}
	if err = copyFile(fsys, name, dst); err != nil {
		return err
	}
	log.Printf("Copied %s", name)
	return nil
}

// subDirs lists the folders in dir. ok is false if dir does not exist.
func subDirs(fsys fs.FS, dir string) (names []string, ok bool, err error) {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	for _, entry := range entries {
		fi, err := fs.Stat(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, false, err
		}
		if fi.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, true, nil
}

// CopyStatic copies the stylesheet and script from the template folder.
func CopyStatic(templates fs.FS, out string) error {
	for _, name := range staticFiles {
		if err := copyIfExists(templates, name, filepath.Join(out, name)); err != nil {
			return fmt.Errorf("CopyStatic: %w", err)
		}
	}
	return nil
}

// Copy copies the avatar, project images, publication featured images and
// résumé from the content folder.
func Copy(fsys fs.FS, out string) error {
	err := copyIfExists(fsys, content.AuthorDir+"/"+content.AvatarFile, filepath.Join(out, content.AvatarFile))
	if err != nil {
		return fmt.Errorf("Copy: %w", err)
	}
	if err = copyProjects(fsys, out); err != nil {
		return fmt.Errorf("Copy: %w", err)
	}
	if err = copyPublications(fsys, out); err != nil {
		return fmt.Errorf("Copy: %w", err)
	}
	if err = copyResume(fsys, out); err != nil {
		return fmt.Errorf("Copy: %w", err)
	}
	return nil
}

// hasImageExtension reports whether name is a project image.
func hasImageExtension(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// copyProjects copies the images of every project folder, whether or not the
// project has an index.md.
func copyProjects(fsys fs.FS, out string) error {
	slugs, ok, err := subDirs(fsys, content.ProjectDir)
	if err != nil || !ok {
		return err
	}
	if err = os.MkdirAll(filepath.Join(out, content.ProjectDir), 0755); err != nil {
		return err
	}
	for _, slug := range slugs {
		dir := path.Join(content.ProjectDir, slug)
		dst := filepath.Join(out, content.ProjectDir, slug)
		if err = os.MkdirAll(dst, 0755); err != nil {
			return err
		}
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if !hasImageExtension(entry.Name()) {
				continue
			}
			if err = copyIfExists(fsys, path.Join(dir, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyPublications copies the featured image of every publication folder.
func copyPublications(fsys fs.FS, out string) error {
	slugs, ok, err := subDirs(fsys, content.PublicationDir)
	if err != nil || !ok {
		return err
	}
	if err = os.MkdirAll(filepath.Join(out, content.PublicationDir), 0755); err != nil {
		return err
	}
	for _, slug := range slugs {
		dst := filepath.Join(out, content.PublicationDir, slug)
		if err = os.MkdirAll(dst, 0755); err != nil {
			return err
		}
		err = copyIfExists(fsys, path.Join(content.PublicationDir, slug, content.FeaturedImage), filepath.Join(dst, content.FeaturedImage))
		if err != nil {
			return err
		}
	}
	return nil
}

// copyResume copies the résumé to uploads/resume.pdf.
func copyResume(fsys fs.FS, out string) error {
	fi, err := fs.Stat(fsys, content.ResumeFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return nil
	}
	if err = os.MkdirAll(filepath.Join(out, "uploads"), 0755); err != nil {
		return err
	}
	return copyIfExists(fsys, content.ResumeFile, filepath.Join(out, "uploads", content.ResumeFile))
}
