package diagfmt

import (
	"fmt"

	"ape/internal/ast"
	"ape/internal/source"
)

func exprKindName(kind ast.ExprKind) string {
	switch kind {
	case ast.ExprValue:
		return "Value"
	case ast.ExprVar:
		return "Var"
	case ast.ExprBinary:
		return "Binary"
	case ast.ExprUnary:
		return "Unary"
	case ast.ExprGroup:
		return "Group"
	case ast.ExprArray:
		return "Array"
	case ast.ExprCall:
		return "Call"
	case ast.ExprMethod:
		return "Method"
	case ast.ExprFunc:
		return "Func"
	case ast.ExprAwait:
		return "Await"
	}
	return "Expr(?)"
}

// buildExprNode constructs the pretty-tree node for one expression under
// the given role label.
func buildExprNode(builder *ast.Builder, exprID ast.ExprID, fs *source.FileSet, role string) *treeNode {
	if exprID == ast.NoExprID {
		return &treeNode{label: role + ": <none>"}
	}
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return &treeNode{label: role + ": <nil>"}
	}

	node := &treeNode{
		label: fmt.Sprintf("%s: %s (span: %s)", role, exprKindName(expr.Kind), formatSpan(expr.Span, fs)),
	}

	switch expr.Kind {
	case ast.ExprValue:
		if data, ok := builder.Exprs.Value(exprID); ok {
			node.label = fmt.Sprintf("%s: %s (span: %s)", role, valueLabel(data.Value), formatSpan(expr.Span, fs))
		}

	case ast.ExprVar:
		if data, ok := builder.Exprs.Var(exprID); ok {
			node.label = fmt.Sprintf("%s: Var %q (span: %s)", role, data.Name.Text, formatSpan(expr.Span, fs))
		}

	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(exprID); ok {
			node.label = fmt.Sprintf("%s: Binary %q (span: %s)", role, data.Op.Text, formatSpan(expr.Span, fs))
			node.children = append(node.children,
				buildExprNode(builder, data.Left, fs, "Left"),
				buildExprNode(builder, data.Right, fs, "Right"),
			)
		}

	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(exprID); ok {
			node.label = fmt.Sprintf("%s: Unary %q (span: %s)", role, data.Op.Text, formatSpan(expr.Span, fs))
			node.children = append(node.children, buildExprNode(builder, data.Operand, fs, "Operand"))
		}

	case ast.ExprGroup:
		if data, ok := builder.Exprs.Group(exprID); ok {
			node.children = append(node.children, buildExprNode(builder, data.Inner, fs, "Inner"))
		}

	case ast.ExprArray:
		if data, ok := builder.Exprs.Array(exprID); ok {
			for i, item := range data.Items {
				node.children = append(node.children, buildExprNode(builder, item, fs, fmt.Sprintf("Item[%d]", i)))
			}
		}

	case ast.ExprCall:
		if data, ok := builder.Exprs.CallData(exprID); ok {
			node.label = fmt.Sprintf("%s: Call/%s (span: %s)", role, data.Call, formatSpan(expr.Span, fs))
			node.children = append(node.children, buildExprNode(builder, data.Callee, fs, "Callee"))
			for i, arg := range data.Args {
				node.children = append(node.children, buildExprNode(builder, arg, fs, fmt.Sprintf("Arg[%d]", i)))
			}
		}

	case ast.ExprMethod:
		if data, ok := builder.Exprs.Method(exprID); ok {
			node.label = fmt.Sprintf("%s: Method %q (span: %s)", role, data.Name.Text, formatSpan(expr.Span, fs))
			node.children = append(node.children, buildExprNode(builder, data.Receiver, fs, "Receiver"))
			for i, arg := range data.Args {
				node.children = append(node.children, buildExprNode(builder, arg, fs, fmt.Sprintf("Arg[%d]", i)))
			}
		}

	case ast.ExprFunc:
		if data, ok := builder.Exprs.Func(exprID); ok {
			name := data.Name.Text
			if name == "" {
				name = "<anon>"
			}
			node.label = fmt.Sprintf("%s: Func %q (span: %s)", role, name, formatSpan(expr.Span, fs))
			node.children = append(node.children,
				&treeNode{label: "Params: " + paramsLabel(data.Params)},
				&treeNode{label: "Return: " + typeLabel(data.Type)},
				buildFuncBodyNode(builder, "Body", data.Body, fs),
			)
		}

	case ast.ExprAwait:
		if data, ok := builder.Exprs.Await(exprID); ok {
			node.children = append(node.children, buildExprNode(builder, data.Inner, fs, "Inner"))
		}
	}

	return node
}

func valueLabel(value ast.LiteralValue) string {
	switch value.Kind {
	case ast.ValueNumber:
		return fmt.Sprintf("Number %v", value.Num)
	case ast.ValueString:
		return fmt.Sprintf("String %q", value.Str)
	case ast.ValueChar:
		return fmt.Sprintf("Char %q", value.Ch)
	case ast.ValueBool:
		return fmt.Sprintf("Bool %v", value.Bool)
	case ast.ValueNull:
		return "Null"
	case ast.ValueVoid:
		return "Void"
	case ast.ValueAny:
		return "Any"
	case ast.ValueArray:
		return fmt.Sprintf("Array[%d]", len(value.Items))
	case ast.ValueFunc:
		return "Func"
	case ast.ValueNative:
		return "Native"
	}
	return "Value(?)"
}
