/*
Package frontmatter splits markdown files into a YAML metadata block and a body.

Front matter is delimited by "---" at the start of the file and again after the
metadata. For example:

	---
	title: "My glorious page"
	tags: [go, web]
	---
	# This is my Heading
	This is my [Markdown](https://en.wikipedia.org/wiki/Markdown).

Parsing never fails. A file that does not start with the delimiter, or whose
metadata is not a YAML mapping, is returned as a body with empty metadata.
*/
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter opens and closes the front matter block.
const delimiter = "---"

// Document holds a parsed markdown file.
type Document struct {
	meta *yaml.Node // mapping node, nil when there is no usable front matter
	Body string     // markdown content
}

// extractFrontMatter splits the front matter and markdown content. The body is
// trimmed only when front matter was found.
func extractFrontMatter(text string) (fm, body string, ok bool) {
	if !strings.HasPrefix(text, delimiter) {
		return "", text, false
	}
	subs := strings.SplitN(text, delimiter, 3)
	if len(subs) != 3 {
		return "", text, false
	}
	return subs[1], strings.TrimSpace(subs[2]), true
}

// Parse splits text into metadata and body.
func Parse(text string) Document {
	fm, body, ok := extractFrontMatter(text)
	if !ok {
		return Document{Body: text}
	}
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(fm), &root); err != nil {
		return Document{Body: text}
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		// blank or comment-only block
		return Document{Body: body}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return Document{Body: text}
	}
	switch n := root.Content[0]; {
	case n.Kind == yaml.MappingNode:
		return Document{meta: n, Body: body}
	case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null":
		return Document{Body: body}
	}
	return Document{Body: text}
}

// Has reports whether the metadata contains key.
func (d Document) Has(key string) bool {
	if d.meta == nil {
		return false
	}
	for i := 0; i+1 < len(d.meta.Content); i += 2 {
		if d.meta.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Fields returns the metadata as a generic map. It is never nil.
func (d Document) Fields() map[string]any {
	fields := map[string]any{}
	if d.meta == nil {
		return fields
	}
	if err := d.meta.Decode(&fields); err != nil {
		return map[string]any{}
	}
	return fields
}

// Decode decodes the metadata into v. Fields whose YAML type does not match
// keep their zero value; the returned error describes them, and the remaining
// fields are still filled in.
func (d Document) Decode(v any) error {
	if d.meta == nil {
		return nil
	}
	return d.meta.Decode(v)
}
