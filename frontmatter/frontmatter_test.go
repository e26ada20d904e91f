package frontmatter

import (
	"reflect"
	"testing"
)

func TestExtractFrontMatter(t *testing.T) {
	var (
		tests = []string{
			``,
			"---\nx: 2\n---",
			` ------ `,
			"---\nx: \"y\"\n---\n\n hello \n",
			"---\nx: 2\n",
			"--- a --- b --- c",
		}
		expect = [][]string{
			{``, ``, `false`},
			{"\nx: 2\n", ``, `true`},
			{``, ` ------ `, `false`},
			{"\nx: \"y\"\n", `hello`, `true`},
			{``, "---\nx: 2\n", `false`},
			{` a `, `b --- c`, `true`},
		}
	)
	for i := range tests {
		fm, r, ok := extractFrontMatter(tests[i])
		got := []string{fm, r, "false"}
		if ok {
			got[2] = "true"
		}
		if !reflect.DeepEqual(got, expect[i]) {
			t.Errorf("Expected %#v but got %#v", expect[i], got)
		}
	}
}

func TestParse(t *testing.T) {
	doc := Parse("---\ntitle: Paper\nauthors: [a, b]\ndate: 2023-05-01T00:00:00Z\n---\n\n# Body\n\n")
	if doc.Body != "# Body" {
		t.Errorf("Unexpected body %q", doc.Body)
	}
	fields := doc.Fields()
	if fields["title"] != "Paper" {
		t.Errorf("Expected title Paper, got %#v", fields["title"])
	}
	if !reflect.DeepEqual(fields["authors"], []any{"a", "b"}) {
		t.Errorf("Unexpected authors %#v", fields["authors"])
	}
	if !doc.Has("date") || doc.Has("summary") {
		t.Error("Has reports the wrong keys")
	}

	var v struct {
		Title string `yaml:"title"`
		Date  string `yaml:"date"`
	}
	if err := doc.Decode(&v); err != nil {
		t.Error(err)
	}
	if v.Date != "2023-05-01T00:00:00Z" {
		t.Errorf("Expected the date as written, got %q", v.Date)
	}
}

func TestParseFallback(t *testing.T) {
	tests := []string{
		"# No front matter\n",
		"---\ntitle: [unclosed\n---\nbody",
		"---\n- a\n- b\n---\nbody",
		"---\njust text\n---\nbody",
		"---\ntitle: x\n",
		" ---\ntitle: x\n---\nbody",
	}
	for _, text := range tests {
		doc := Parse(text)
		if doc.Body != text {
			t.Errorf("Expected original text for %q, got %q", text, doc.Body)
		}
		if len(doc.Fields()) != 0 {
			t.Errorf("Expected empty metadata for %q, got %#v", text, doc.Fields())
		}
		if err := doc.Decode(&struct{}{}); err != nil {
			t.Errorf("Decode of empty metadata failed: %s", err)
		}
	}
}

func TestParseEmptyBlock(t *testing.T) {
	for _, text := range []string{"---\n---\n body ", "---\n# comment\n---\nbody ", "---\n~\n---\nbody"} {
		doc := Parse(text)
		if len(doc.Fields()) != 0 {
			t.Errorf("Expected empty metadata for %q", text)
		}
		if doc.Body != "body" {
			t.Errorf("Expected trimmed body for %q, got %q", text, doc.Body)
		}
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	doc := Parse("---\ntitle: Demo\ntags: notalist\n---\n")
	var v struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}
	if err := doc.Decode(&v); err == nil {
		t.Error("Expected a type error")
	}
	if v.Title != "Demo" {
		t.Errorf("Expected remaining fields to decode, got %q", v.Title)
	}
	if v.Tags != nil {
		t.Errorf("Expected nil tags, got %#v", v.Tags)
	}
}
