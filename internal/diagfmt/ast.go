package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ape/internal/ast"
	"ape/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty writes the parsed program as an indented tree with
// box-drawing connectors, one root per top-level statement.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fs *source.FileSet) error {
	header := "Program"
	if fs != nil && len(builder.Top) > 0 {
		span := builder.Stmts.Get(builder.Top[0]).Span
		header = fs.Get(span.File).FormatPath("auto", fs.BaseDir())
	}
	fmt.Fprintln(w, header)

	root := &treeNode{}
	for idx, stmtID := range builder.Top {
		root.children = append(root.children, buildStmtNode(builder, stmtID, fs, idx))
	}
	writeTree(w, root, "")
	return nil
}

func writeTree(w io.Writer, node *treeNode, prefix string) {
	for i, child := range node.children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(node.children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, child.label)
		writeTree(w, child, childPrefix)
	}
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return span.String()
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// ASTNodeOutput is one tree node in machine-readable output.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

// FormatASTJSON writes the parsed program as an indented JSON tree.
func FormatASTJSON(w io.Writer, builder *ast.Builder) error {
	children := make([]ASTNodeOutput, 0, len(builder.Top))
	for _, stmtID := range builder.Top {
		children = append(children, buildStmtJSON(builder, stmtID))
	}

	root := ASTNodeOutput{
		Type:     "program",
		Children: children,
	}
	if len(builder.Top) > 0 {
		first := builder.Stmts.Get(builder.Top[0]).Span
		last := builder.Stmts.Get(builder.Top[len(builder.Top)-1]).Span
		root.Span = first.Cover(last)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}
