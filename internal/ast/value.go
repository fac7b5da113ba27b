package ast

// ValueKind tags the semantic value domain shared with the resolver and
// interpreter.
type ValueKind uint8

const (
	// ValueNumber is a number value.
	ValueNumber ValueKind = iota
	// ValueString is a string value.
	ValueString
	// ValueChar is a character value.
	ValueChar
	// ValueBool is a boolean value.
	ValueBool
	// ValueNull is the null value.
	ValueNull
	// ValueVoid is the void value.
	ValueVoid
	// ValueAny is the dynamic value marker.
	ValueAny
	// ValueArray is an ordered sequence of value expressions.
	ValueArray
	// ValueFunc is a declared function or closure value.
	ValueFunc
	// ValueNative is a native (built-in) callable binding.
	ValueNative
)

// LiteralValue is the parser/runtime-facing value a Value expression carries.
// Exactly one payload field is meaningful for a given Kind.
type LiteralValue struct {
	Kind   ValueKind
	Num    float32
	Str    string
	Ch     rune
	Bool   bool
	Items  []ExprID // ValueArray: ids of the element value expressions
	Fn     *FuncValue
	Native *NativeFunc
}

// NumberValue builds a number value.
func NumberValue(v float32) LiteralValue { return LiteralValue{Kind: ValueNumber, Num: v} }

// StringValue builds a string value.
func StringValue(v string) LiteralValue { return LiteralValue{Kind: ValueString, Str: v} }

// CharValue builds a character value.
func CharValue(v rune) LiteralValue { return LiteralValue{Kind: ValueChar, Ch: v} }

// BoolValue builds a boolean value.
func BoolValue(v bool) LiteralValue { return LiteralValue{Kind: ValueBool, Bool: v} }

// NullValue builds the null value.
func NullValue() LiteralValue { return LiteralValue{Kind: ValueNull} }

// AnyValue builds the dynamic value marker.
func AnyValue() LiteralValue { return LiteralValue{Kind: ValueAny} }

// ArrayValue builds an array value over element value expressions.
func ArrayValue(items []ExprID) LiteralValue {
	return LiteralValue{Kind: ValueArray, Items: items}
}

// Callable is the capability the call chain invokes when a Call node resolves
// to a native binding instead of a user-declared function. The standard
// library implements it; this core only carries the contract.
type Callable interface {
	Call(args []LiteralValue) LiteralValue
}

// NativeFunc is a named native binding around a Callable.
type NativeFunc struct {
	Name  string
	Arity int
	Impl  Callable
}

// Equal compares two native bindings. Natives are equal only when they wrap
// the identical callable; name and arity never enter into it.
func (n *NativeFunc) Equal(other *NativeFunc) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Impl == other.Impl
}

// FuncValue is a function or closure value. The binding environment a closure
// captures is owned by the runtime and attached after resolution; this core
// records only which declaration the value came from.
type FuncValue struct {
	Name string
	Decl ExprID
}
