// Package markdown renders the [label](url) micro-syntax used inside
// blog post bodies. It is not a markdown engine: links are the only
// recognized construct, everything else is escaped plain text.
package markdown

import (
	"html"
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Render splits the content on blank lines and wraps each paragraph in
// <p>, turning inline [label](url) references into anchors.
func Render(content string) string {
	paragraphs := strings.Split(content, "\n\n")
	var b strings.Builder
	for _, para := range paragraphs {
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(renderParagraph(para))
		b.WriteString("</p>\n")
	}
	return b.String()
}

func renderParagraph(para string) string {
	var b strings.Builder
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(para, -1) {
		b.WriteString(html.EscapeString(para[last:m[0]]))
		label := para[m[2]:m[3]]
		href := para[m[4]:m[5]]
		b.WriteString(`<a href="` + html.EscapeString(href) + `" target="_blank" rel="noopener noreferrer">`)
		b.WriteString(html.EscapeString(label))
		b.WriteString("</a>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(para[last:]))
	return b.String()
}
