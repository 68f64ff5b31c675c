package renderer

import (
	"fmt"
	"html"
	"strings"

	"github.com/erraggy/docdiff/document"
)

// HTML renders a document to HTML. Leaves carrying a diff mark are wrapped
// in <ins> or <del>, outside any formatting marks. Unknown node types render
// their content only; unknown marks are ignored.
func HTML(root *document.Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	renderHTML(&sb, root)
	return sb.String()
}

func renderHTML(sb *strings.Builder, n *document.Node) {
	switch n.Type {
	case "doc":
		renderHTMLContent(sb, n)
	case "paragraph":
		wrapHTML(sb, n, "<p>", "</p>\n")
	case "heading":
		level := min(max(intAttr(n.Attrs, "level", 1), 1), 6)
		wrapHTML(sb, n, fmt.Sprintf("<h%d>", level), fmt.Sprintf("</h%d>\n", level))
	case "bulletList", "bullet_list":
		wrapHTML(sb, n, "<ul>\n", "</ul>\n")
	case "orderedList", "ordered_list":
		openTag := "<ol>\n"
		if start := intAttr(n.Attrs, "start", intAttr(n.Attrs, "order", 1)); start != 1 {
			openTag = fmt.Sprintf("<ol start=\"%d\">\n", start)
		}
		wrapHTML(sb, n, openTag, "</ol>\n")
	case "listItem", "list_item", "taskItem":
		wrapHTML(sb, n, "<li>", "</li>\n")
	case "taskList":
		wrapHTML(sb, n, "<ul data-type=\"taskList\">\n", "</ul>\n")
	case "blockquote":
		wrapHTML(sb, n, "<blockquote>\n", "</blockquote>\n")
	case "codeBlock", "code_block":
		wrapHTML(sb, n, "<pre><code>", "</code></pre>\n")
	case "table":
		wrapHTML(sb, n, "<table>\n", "</table>\n")
	case "tableRow", "table_row":
		wrapHTML(sb, n, "<tr>\n", "</tr>\n")
	case "tableCell", "table_cell":
		wrapHTML(sb, n, "<td>", "</td>\n")
	case "tableHeader", "table_header":
		wrapHTML(sb, n, "<th>", "</th>\n")
	case document.TextType:
		sb.WriteString(textWithMarks(n))
	case "hardBreak", "hard_break":
		sb.WriteString(withDiffTag(n, "<br>"))
	case "horizontalRule", "horizontal_rule":
		sb.WriteString(withDiffTag(n, "<hr>"))
		sb.WriteByte('\n')
	case "image":
		sb.WriteString(withDiffTag(n, imageTag(n)))
	default:
		renderHTMLContent(sb, n)
	}
}

func renderHTMLContent(sb *strings.Builder, n *document.Node) {
	for _, c := range n.Content {
		renderHTML(sb, c)
	}
}

// wrapHTML renders n's content between openTag and closeTag. A childless node
// that carries a diff mark gets an empty <ins> or <del> so the change stays
// visible.
func wrapHTML(sb *strings.Builder, n *document.Node, openTag, closeTag string) {
	sb.WriteString(openTag)
	if len(n.Content) == 0 {
		sb.WriteString(withDiffTag(n, ""))
	}
	renderHTMLContent(sb, n)
	sb.WriteString(closeTag)
}

// textWithMarks renders a text leaf. Marks are applied from the outside in;
// the diff mark wraps everything.
func textWithMarks(n *document.Node) string {
	if n.Text == "" {
		return ""
	}
	out := html.EscapeString(n.Text)
	for i := len(n.Marks) - 1; i >= 0; i-- {
		m := n.Marks[i]
		switch m.Type {
		case "bold", "strong":
			out = "<strong>" + out + "</strong>"
		case "italic", "em":
			out = "<em>" + out + "</em>"
		case "code":
			out = "<code>" + out + "</code>"
		case "strike":
			out = "<s>" + out + "</s>"
		case "underline":
			out = "<u>" + out + "</u>"
		case "subscript":
			out = "<sub>" + out + "</sub>"
		case "superscript":
			out = "<sup>" + out + "</sup>"
		case "highlight":
			out = "<mark>" + out + "</mark>"
		case "link":
			href, _ := m.Attrs["href"].(string)
			out = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), out)
		}
	}
	return withDiffTag(n, out)
}

func withDiffTag(n *document.Node, inner string) string {
	t, ok := document.DiffMarkOf(n)
	if !ok {
		return inner
	}
	if t == document.DiffDeleted {
		return "<del>" + inner + "</del>"
	}
	return "<ins>" + inner + "</ins>"
}

func imageTag(n *document.Node) string {
	src, _ := n.Attrs["src"].(string)
	alt, _ := n.Attrs["alt"].(string)
	return fmt.Sprintf(`<img src="%s" alt="%s">`, html.EscapeString(src), html.EscapeString(alt))
}

// intAttr reads a numeric attribute. JSON numbers decode as float64 and
// YAML numbers as int.
func intAttr(attrs document.Attrs, key string, def int) int {
	switch v := attrs[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}
