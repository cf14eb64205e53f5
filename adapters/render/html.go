package render

import (
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"cognia/domain/report"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: "Segoe UI", Arial, sans-serif; margin: 40px; background: #f4f6f9; color: #2c3e50; }
h1 { text-align: center; }
h2 { border-bottom: 2px solid #dfe6e9; padding-bottom: 6px; }
table { border-collapse: collapse; width: 100%%; margin: 15px 0; font-size: 14px; background: #ffffff; }
th, td { border: 1px solid #dee2e6; padding: 10px; text-align: center; }
th { background-color: #f1f3f5; font-weight: 600; }
tr:nth-child(even) { background-color: #fafafa; }
img { display: block; margin: 0 auto; max-width: 100%%; }
</style>
</head>
<body>
%s
</body>
</html>
`

// HTML renders a report as a standalone HTML page: the markdown layout
// converted with table support, wrapped in a styled shell.
func HTML(r *report.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML([]byte(Markdown(r)), p, renderer)
	return []byte(fmt.Sprintf(htmlShell, r.Title, body))
}
