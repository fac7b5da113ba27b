package diagfmt

import (
	"fmt"
	"strings"

	"ape/internal/ast"
	"ape/internal/source"
	"ape/internal/token"
)

func stmtKindName(kind ast.StmtKind) string {
	switch kind {
	case ast.StmtExpr:
		return "Expr"
	case ast.StmtBlock:
		return "Block"
	case ast.StmtVar:
		return "Var"
	case ast.StmtFunc:
		return "Func"
	case ast.StmtIf:
		return "If"
	case ast.StmtReturn:
		return "Return"
	case ast.StmtWhile:
		return "While"
	case ast.StmtLoop:
		return "Loop"
	case ast.StmtBreak:
		return "Break"
	case ast.StmtMatch:
		return "Match"
	case ast.StmtMod:
		return "Mod"
	case ast.StmtUse:
		return "Use"
	case ast.StmtStruct:
		return "Struct"
	case ast.StmtImpl:
		return "Impl"
	case ast.StmtEnum:
		return "Enum"
	}
	return "Stmt(?)"
}

// buildStmtNode constructs the pretty-tree node for one statement,
// labeled Stmt[idx] with the kind and span, and descends into its
// payload.
func buildStmtNode(builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet, idx int) *treeNode {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return &treeNode{label: fmt.Sprintf("Stmt[%d]: <nil>", idx)}
	}

	node := &treeNode{
		label: fmt.Sprintf("Stmt[%d]: %s (span: %s)", idx, stmtKindName(stmt.Kind), formatSpan(stmt.Span, fs)),
	}

	switch stmt.Kind {
	case ast.StmtExpr:
		if data, ok := builder.Stmts.Expr(stmtID); ok {
			node.children = append(node.children, buildExprNode(builder, data.Expr, fs, "Expr"))
		}

	case ast.StmtBlock:
		if data, ok := builder.Stmts.Block(stmtID); ok {
			node.children = append(node.children, buildBodyNode(builder, "Body", data.Stmts, fs))
		}

	case ast.StmtVar:
		if data, ok := builder.Stmts.Var(stmtID); ok {
			node.children = append(node.children,
				&treeNode{label: "Names: " + tokenNames(data.Names)},
				&treeNode{label: fmt.Sprintf("Mutable: %v", data.IsMut)},
			)
			if data.IsPub {
				label := "Pub"
				if len(data.PubNames) > 0 {
					label = "Pub: " + tokenNames(data.PubNames)
				}
				node.children = append(node.children, &treeNode{label: label})
			}
			node.children = append(node.children, &treeNode{label: "Type: " + typeLabel(data.Type)})
			if data.Value != ast.NoExprID {
				node.children = append(node.children, buildExprNode(builder, data.Value, fs, "Value"))
			}
		}

	case ast.StmtFunc:
		if data, ok := builder.Stmts.Func(stmtID); ok {
			node.children = append(node.children, &treeNode{label: "Name: " + data.Name.Text})
			if mods := funcModifiers(data.IsAsync, data.IsPub, data.IsImpl, data.IsMut); mods != "" {
				node.children = append(node.children, &treeNode{label: "Modifiers: " + mods})
			}
			node.children = append(node.children,
				&treeNode{label: "Params: " + paramsLabel(data.Params)},
				&treeNode{label: "Return: " + typeLabel(data.Type)},
				buildFuncBodyNode(builder, "Body", data.Body, fs),
			)
		}

	case ast.StmtIf:
		if data, ok := builder.Stmts.If(stmtID); ok {
			node.children = append(node.children,
				buildExprNode(builder, data.Cond, fs, "Cond"),
				buildBodyNode(builder, "Then", data.Body, fs),
			)
			for i, arm := range data.ElseIf {
				armNode := &treeNode{label: fmt.Sprintf("ElseIf[%d]", i)}
				armNode.children = append(armNode.children,
					buildExprNode(builder, arm.Cond, fs, "Cond"),
					buildBodyNode(builder, "Then", arm.Body, fs),
				)
				node.children = append(node.children, armNode)
			}
			if data.HasElse {
				node.children = append(node.children, buildBodyNode(builder, "Else", data.Else, fs))
			}
		}

	case ast.StmtReturn:
		if data, ok := builder.Stmts.Return(stmtID); ok {
			node.children = append(node.children, buildExprNode(builder, data.Expr, fs, "Expr"))
		}

	case ast.StmtWhile:
		if data, ok := builder.Stmts.While(stmtID); ok {
			node.children = append(node.children,
				buildExprNode(builder, data.Cond, fs, "Cond"),
				buildBodyNode(builder, "Body", data.Body, fs),
			)
		}

	case ast.StmtLoop:
		if data, ok := builder.Stmts.Loop(stmtID); ok {
			iter := "unbounded"
			if data.HasIter {
				iter = fmt.Sprintf("%d", data.Iter)
			}
			node.children = append(node.children,
				&treeNode{label: "Iter: " + iter},
				buildBodyNode(builder, "Body", data.Body, fs),
			)
		}

	case ast.StmtMatch:
		if data, ok := builder.Stmts.Match(stmtID); ok {
			node.children = append(node.children, buildExprNode(builder, data.Cond, fs, "Cond"))
			for i, arm := range data.Cases {
				armNode := &treeNode{label: fmt.Sprintf("Case[%d]", i)}
				armNode.children = append(armNode.children,
					buildExprNode(builder, arm.Pattern, fs, "Pattern"),
					buildFuncBodyNode(builder, "Body", arm.Body, fs),
				)
				node.children = append(node.children, armNode)
			}
			node.children = append(node.children, buildFuncBodyNode(builder, "Default", data.Default, fs))
		}

	case ast.StmtMod:
		if data, ok := builder.Stmts.Mod(stmtID); ok {
			node.children = append(node.children, &treeNode{label: "Src: " + data.Src})
		}

	case ast.StmtUse:
		if data, ok := builder.Stmts.Use(stmtID); ok {
			namesNode := &treeNode{label: "Names"}
			for _, name := range data.Names {
				label := name.Name.Text
				if name.HasAlias {
					label += " as " + name.Alias.Text
				}
				namesNode.children = append(namesNode.children, &treeNode{label: label})
			}
			node.children = append(node.children, namesNode, &treeNode{label: "Src: " + data.Src})
		}

	case ast.StmtStruct:
		if data, ok := builder.Stmts.Struct(stmtID); ok {
			node.children = append(node.children, &treeNode{label: "Name: " + data.Name.Text})
			fieldsNode := &treeNode{label: "Fields"}
			for _, field := range data.Fields {
				label := field.Name.Text + ": " + field.Type.String()
				if field.IsPub {
					label = "pub " + label
				}
				fieldsNode.children = append(fieldsNode.children, &treeNode{label: label})
			}
			node.children = append(node.children, fieldsNode)
		}

	case ast.StmtImpl:
		if data, ok := builder.Stmts.Impl(stmtID); ok {
			node.children = append(node.children,
				&treeNode{label: "Name: " + data.Name.Text},
				buildBodyNode(builder, "Body", data.Body, fs),
			)
		}

	case ast.StmtEnum:
		if data, ok := builder.Stmts.Enum(stmtID); ok {
			node.children = append(node.children,
				&treeNode{label: "Name: " + data.Name.Text},
				&treeNode{label: "Variants: " + tokenNames(data.Variants)},
			)
		}
	}

	return node
}

func buildBodyNode(builder *ast.Builder, label string, stmts []ast.StmtID, fs *source.FileSet) *treeNode {
	node := &treeNode{label: label}
	for i, stmtID := range stmts {
		node.children = append(node.children, buildStmtNode(builder, stmtID, fs, i))
	}
	return node
}

func buildFuncBodyNode(builder *ast.Builder, label string, body ast.FuncBody, fs *source.FileSet) *treeNode {
	if body.Kind == ast.FuncBodyExpr {
		return buildExprNode(builder, body.Expr, fs, label)
	}
	return buildBodyNode(builder, label, body.Stmts, fs)
}

func tokenNames(tokens []token.Token) string {
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = tok.Text
	}
	return strings.Join(names, ", ")
}

func typeLabel(tok token.Token) string {
	if tok.Text != "" && tok.Text != tok.Kind.String() {
		return fmt.Sprintf("%s (%s)", tok.Kind, tok.Text)
	}
	return tok.Kind.String()
}

func paramsLabel(params []ast.Param) string {
	if len(params) == 0 {
		return "()"
	}
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = param.Name.Text + ": " + typeLabel(param.Type)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func funcModifiers(isAsync, isPub, isImpl, isMut bool) string {
	var mods []string
	if isPub {
		mods = append(mods, "pub")
	}
	if isAsync {
		mods = append(mods, "async")
	}
	if isImpl {
		receiver := "self"
		if isMut {
			receiver = "mut self"
		}
		mods = append(mods, receiver)
	}
	return strings.Join(mods, ", ")
}
