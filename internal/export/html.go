package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ivlev/slidenotes/internal/deck"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Slide Notes</title>
</head>
<body>
`

// HTML converts the Markdown document for slides into a standalone HTML page.
func HTML(slides []deck.Slide) ([]byte, error) {
	// hard wraps keep sub-items on their own lines under a list item
	md := goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

	var buf bytes.Buffer
	buf.WriteString(htmlHead)
	if err := md.Convert([]byte(Document(slides, Markdown)), &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
