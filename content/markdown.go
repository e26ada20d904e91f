package content

import (
	"github.com/russross/blackfriday/v2"
)

// markdownExtensions are the blackfriday extensions used for all content.
const markdownExtensions = blackfriday.CommonExtensions | blackfriday.Footnotes

// Markdown renders markdown source to XHTML-style HTML. Quotes and dashes are
// left as written.
func Markdown(src string) string {
	if src == "" {
		return ""
	}
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	return string(blackfriday.Run([]byte(src), blackfriday.WithExtensions(markdownExtensions), blackfriday.WithRenderer(r)))
}
