package diagfmt

import (
	"ape/internal/ast"
)

func buildStmtJSON(builder *ast.Builder, stmtID ast.StmtID) ASTNodeOutput {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return ASTNodeOutput{Type: "stmt", Kind: "nil"}
	}

	node := ASTNodeOutput{
		Type: "stmt",
		Kind: stmtKindName(stmt.Kind),
		Span: stmt.Span,
	}

	switch stmt.Kind {
	case ast.StmtExpr:
		if data, ok := builder.Stmts.Expr(stmtID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Expr))
		}

	case ast.StmtBlock:
		if data, ok := builder.Stmts.Block(stmtID); ok {
			node.Children = appendStmtsJSON(node.Children, builder, data.Stmts)
		}

	case ast.StmtVar:
		if data, ok := builder.Stmts.Var(stmtID); ok {
			names := make([]string, len(data.Names))
			for i, tok := range data.Names {
				names[i] = tok.Text
			}
			node.Fields = map[string]any{
				"names":   names,
				"type":    typeLabel(data.Type),
				"mutable": data.IsMut,
				"pub":     data.IsPub,
				"is_func": data.IsFunc,
			}
			if data.Value != ast.NoExprID {
				node.Children = append(node.Children, buildExprJSON(builder, data.Value))
			}
		}

	case ast.StmtFunc:
		if data, ok := builder.Stmts.Func(stmtID); ok {
			node.Text = data.Name.Text
			node.Fields = map[string]any{
				"params": paramsLabel(data.Params),
				"return": typeLabel(data.Type),
				"async":  data.IsAsync,
				"pub":    data.IsPub,
				"impl":   data.IsImpl,
				"mut":    data.IsMut,
			}
			node.Children = appendFuncBodyJSON(node.Children, builder, data.Body)
		}

	case ast.StmtIf:
		if data, ok := builder.Stmts.If(stmtID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Cond))
			node.Children = appendStmtsJSON(node.Children, builder, data.Body)
			for _, arm := range data.ElseIf {
				armNode := ASTNodeOutput{Type: "else-if"}
				armNode.Children = append(armNode.Children, buildExprJSON(builder, arm.Cond))
				armNode.Children = appendStmtsJSON(armNode.Children, builder, arm.Body)
				node.Children = append(node.Children, armNode)
			}
			if data.HasElse {
				elseNode := ASTNodeOutput{Type: "else"}
				elseNode.Children = appendStmtsJSON(elseNode.Children, builder, data.Else)
				node.Children = append(node.Children, elseNode)
			}
		}

	case ast.StmtReturn:
		if data, ok := builder.Stmts.Return(stmtID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Expr))
		}

	case ast.StmtWhile:
		if data, ok := builder.Stmts.While(stmtID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Cond))
			node.Children = appendStmtsJSON(node.Children, builder, data.Body)
		}

	case ast.StmtLoop:
		if data, ok := builder.Stmts.Loop(stmtID); ok {
			node.Fields = map[string]any{"bounded": data.HasIter}
			if data.HasIter {
				node.Fields["iter"] = data.Iter
			}
			node.Children = appendStmtsJSON(node.Children, builder, data.Body)
		}

	case ast.StmtMatch:
		if data, ok := builder.Stmts.Match(stmtID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Cond))
			for _, arm := range data.Cases {
				armNode := ASTNodeOutput{Type: "case"}
				armNode.Children = append(armNode.Children, buildExprJSON(builder, arm.Pattern))
				armNode.Children = appendFuncBodyJSON(armNode.Children, builder, arm.Body)
				node.Children = append(node.Children, armNode)
			}
			defaultNode := ASTNodeOutput{Type: "default"}
			defaultNode.Children = appendFuncBodyJSON(defaultNode.Children, builder, data.Default)
			node.Children = append(node.Children, defaultNode)
		}

	case ast.StmtMod:
		if data, ok := builder.Stmts.Mod(stmtID); ok {
			node.Text = data.Src
		}

	case ast.StmtUse:
		if data, ok := builder.Stmts.Use(stmtID); ok {
			node.Text = data.Src
			names := make([]string, len(data.Names))
			for i, name := range data.Names {
				names[i] = name.Name.Text
				if name.HasAlias {
					names[i] += " as " + name.Alias.Text
				}
			}
			node.Fields = map[string]any{"names": names}
		}

	case ast.StmtStruct:
		if data, ok := builder.Stmts.Struct(stmtID); ok {
			node.Text = data.Name.Text
			fields := make([]string, len(data.Fields))
			for i, field := range data.Fields {
				fields[i] = field.Name.Text + ": " + field.Type.String()
			}
			node.Fields = map[string]any{"fields": fields, "pub": data.IsPub}
		}

	case ast.StmtImpl:
		if data, ok := builder.Stmts.Impl(stmtID); ok {
			node.Text = data.Name.Text
			node.Children = appendStmtsJSON(node.Children, builder, data.Body)
		}

	case ast.StmtEnum:
		if data, ok := builder.Stmts.Enum(stmtID); ok {
			node.Text = data.Name.Text
			variants := make([]string, len(data.Variants))
			for i, tok := range data.Variants {
				variants[i] = tok.Text
			}
			node.Fields = map[string]any{"variants": variants, "pub": data.IsPub}
		}
	}

	return node
}

func buildExprJSON(builder *ast.Builder, exprID ast.ExprID) ASTNodeOutput {
	if exprID == ast.NoExprID {
		return ASTNodeOutput{Type: "expr", Kind: "none"}
	}
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return ASTNodeOutput{Type: "expr", Kind: "nil"}
	}

	node := ASTNodeOutput{
		Type: "expr",
		Kind: exprKindName(expr.Kind),
		Span: expr.Span,
	}

	switch expr.Kind {
	case ast.ExprValue:
		if data, ok := builder.Exprs.Value(exprID); ok {
			node.Text = valueLabel(data.Value)
		}

	case ast.ExprVar:
		if data, ok := builder.Exprs.Var(exprID); ok {
			node.Text = data.Name.Text
		}

	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(exprID); ok {
			node.Text = data.Op.Text
			node.Children = append(node.Children,
				buildExprJSON(builder, data.Left),
				buildExprJSON(builder, data.Right),
			)
		}

	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(exprID); ok {
			node.Text = data.Op.Text
			node.Children = append(node.Children, buildExprJSON(builder, data.Operand))
		}

	case ast.ExprGroup:
		if data, ok := builder.Exprs.Group(exprID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Inner))
		}

	case ast.ExprArray:
		if data, ok := builder.Exprs.Array(exprID); ok {
			for _, item := range data.Items {
				node.Children = append(node.Children, buildExprJSON(builder, item))
			}
		}

	case ast.ExprCall:
		if data, ok := builder.Exprs.CallData(exprID); ok {
			node.Fields = map[string]any{"dispatch": data.Call.String()}
			node.Children = append(node.Children, buildExprJSON(builder, data.Callee))
			for _, arg := range data.Args {
				node.Children = append(node.Children, buildExprJSON(builder, arg))
			}
		}

	case ast.ExprMethod:
		if data, ok := builder.Exprs.Method(exprID); ok {
			node.Text = data.Name.Text
			node.Children = append(node.Children, buildExprJSON(builder, data.Receiver))
			for _, arg := range data.Args {
				node.Children = append(node.Children, buildExprJSON(builder, arg))
			}
		}

	case ast.ExprFunc:
		if data, ok := builder.Exprs.Func(exprID); ok {
			node.Text = data.Name.Text
			node.Fields = map[string]any{
				"params": paramsLabel(data.Params),
				"return": typeLabel(data.Type),
			}
			node.Children = appendFuncBodyJSON(node.Children, builder, data.Body)
		}

	case ast.ExprAwait:
		if data, ok := builder.Exprs.Await(exprID); ok {
			node.Children = append(node.Children, buildExprJSON(builder, data.Inner))
		}
	}

	return node
}

func appendStmtsJSON(children []ASTNodeOutput, builder *ast.Builder, stmts []ast.StmtID) []ASTNodeOutput {
	for _, stmtID := range stmts {
		children = append(children, buildStmtJSON(builder, stmtID))
	}
	return children
}

func appendFuncBodyJSON(children []ASTNodeOutput, builder *ast.Builder, body ast.FuncBody) []ASTNodeOutput {
	if body.Kind == ast.FuncBodyExpr {
		return append(children, buildExprJSON(builder, body.Expr))
	}
	return appendStmtsJSON(children, builder, body.Stmts)
}
