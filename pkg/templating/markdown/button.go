package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultButtonClass is the class set on rendered call-to-action links.
const DefaultButtonClass = "button"

// KindButton is the node kind of Button.
var KindButton = ast.NewNodeKind("Button")

// Button is a call-to-action link written as [!button|Label](URL).
type Button struct {
	ast.BaseInline
	Destination []byte
	Label       []byte
}

// Kind implements ast.Node.
func (n *Button) Kind() ast.NodeKind {
	return KindButton
}

// Dump implements ast.Node.
func (n *Button) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Destination": string(n.Destination),
		"Label":       string(n.Label),
	}, nil)
}

var buttonOpen = []byte("[!button|")

type buttonParser struct{}

func (buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonOpen) {
		return nil
	}

	rest := line[len(buttonOpen):]
	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd < 0 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}

	dest := rest[labelEnd+2:]
	destEnd := bytes.IndexByte(dest, ')')
	if destEnd < 0 {
		return nil
	}

	block.Advance(len(buttonOpen) + labelEnd + 2 + destEnd + 1)

	return &Button{
		Label:       rest[:labelEnd],
		Destination: bytes.TrimSpace(dest[:destEnd]),
	}
}

type buttonRenderer struct {
	class []byte
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (r *buttonRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*Button)

	// Unsafe destinations degrade to the bare label.
	if html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(n.Label))
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	_, _ = w.WriteString(`" class="`)
	_, _ = w.Write(util.EscapeHTML(r.class))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

type buttons struct {
	class string
}

// Buttons returns a goldmark extension rendering [!button|Label](URL) as a
// link with the given class. An empty class uses DefaultButtonClass.
func Buttons(class string) goldmark.Extender {
	if class == "" {
		class = DefaultButtonClass
	}
	return &buttons{class: class}
}

func (e *buttons) Extend(m goldmark.Markdown) {
	// Runs ahead of the link parser (priority 200), which shares the trigger.
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&buttonRenderer{class: []byte(e.class)}, 50),
	))
}
