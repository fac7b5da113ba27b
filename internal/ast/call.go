package ast

// CallType discriminates the runtime dispatch a Call expression asks for.
type CallType uint8

const (
	// CallFunc is an ordinary function invocation.
	CallFunc CallType = iota
	// CallVar is a variable dereference call.
	CallVar
	// CallStruct is a struct field access.
	CallStruct
	// CallOpenStruct is a struct literal/constructor call.
	CallOpenStruct
	// CallMethod is an impl method invocation.
	CallMethod
	// CallEnum is an enum variant selection.
	CallEnum
	// CallArray is an array index access.
	CallArray
)

func (c CallType) String() string {
	switch c {
	case CallFunc:
		return "func"
	case CallVar:
		return "var"
	case CallStruct:
		return "struct"
	case CallOpenStruct:
		return "open-struct"
	case CallMethod:
		return "method"
	case CallEnum:
		return "enum"
	case CallArray:
		return "array"
	}
	return "call(?)"
}
