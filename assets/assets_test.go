package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"authors/admin/avatar.jpg":       {Data: []byte("avatar")},
		"authors/admin/_index.md":        {Data: []byte("---\ntitle: Me\n---\n")},
		"project/demo/index.md":          {Data: []byte("---\ntitle: Demo\n---\n")},
		"project/demo/featured.png":      {Data: []byte("featured")},
		"project/demo/shot.jpg":          {Data: []byte("jpg")},
		"project/demo/notes.txt":         {Data: []byte("skip")},
		"project/orphan/a.jpeg":          {Data: []byte("jpeg")},
		"project/weird.png/inner.png":    {Data: []byte("nested")},
		"publication/paper/index.md":     {Data: []byte("---\ntitle: Paper\n---\n")},
		"publication/paper/featured.png": {Data: []byte("pubimg")},
		"publication/noimage/index.md":   {Data: []byte("---\ntitle: Other\n---\n")},
		"resume.pdf":                     {Data: []byte("%PDF")},
	}
}

func readFile(t *testing.T, out, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCopy(t *testing.T) {
	out := t.TempDir()
	if err := Copy(testContent(), out); err != nil {
		t.Fatal(err)
	}
	tests := map[string]string{
		"avatar.jpg":                     "avatar",
		"project/demo/featured.png":      "featured",
		"project/demo/shot.jpg":          "jpg",
		"project/orphan/a.jpeg":          "jpeg",
		"publication/paper/featured.png": "pubimg",
		"uploads/resume.pdf":             "%PDF",
	}
	for name, want := range tests {
		if got := string(readFile(t, out, name)); got != want {
			t.Errorf("%s: expected %q but got %q", name, want, got)
		}
	}
	for _, name := range []string{"project/demo/notes.txt", "project/demo/index.md", "publication/noimage/featured.png"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err == nil {
			t.Errorf("Did not expect %s in output", name)
		}
	}
	if fi, err := os.Stat(filepath.Join(out, "project", "weird.png")); err != nil || !fi.IsDir() {
		t.Error("Expected a folder named like an image to stay a folder")
	}
	if fi, err := os.Stat(filepath.Join(out, "publication", "noimage")); err != nil || !fi.IsDir() {
		t.Error("Expected a folder for every publication")
	}
}

func TestCopyEmpty(t *testing.T) {
	out := t.TempDir()
	if err := Copy(fstest.MapFS{}, out); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected nothing copied, got %d entries", len(entries))
	}
}

func TestCopyIdempotent(t *testing.T) {
	out := t.TempDir()
	fsys := testContent()
	if err := Copy(fsys, out); err != nil {
		t.Fatal(err)
	}
	first := readFile(t, out, "project/demo/featured.png")
	if err := Copy(fsys, out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, readFile(t, out, "project/demo/featured.png")) {
		t.Error("Expected the same output after a second copy")
	}
}

func TestCopyStatic(t *testing.T) {
	out := t.TempDir()
	tpls := fstest.MapFS{
		"style.css":  {Data: []byte("body{}")},
		"index.html": {Data: []byte("<html>")},
	}
	if err := CopyStatic(tpls, out); err != nil {
		t.Fatal(err)
	}
	if got := string(readFile(t, out, "style.css")); got != "body{}" {
		t.Errorf("Unexpected style.css %q", got)
	}
	for _, name := range []string{"script.js", "index.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err == nil {
			t.Errorf("Did not expect %s in output", name)
		}
	}
}
