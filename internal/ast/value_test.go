package ast

import (
	"testing"
)

type stubCallable struct{ result LiteralValue }

func (s *stubCallable) Call(args []LiteralValue) LiteralValue { return s.result }

func TestNativeFunc_EqualIsImplIdentity(t *testing.T) {
	shared := &stubCallable{result: NullValue()}
	other := &stubCallable{result: NullValue()}

	a := &NativeFunc{Name: "len", Arity: 1, Impl: shared}
	b := &NativeFunc{Name: "size", Arity: 2, Impl: shared}
	c := &NativeFunc{Name: "len", Arity: 1, Impl: other}

	// same underlying callable: equal regardless of name and arity
	if !a.Equal(b) {
		t.Error("bindings around the identical callable compared unequal")
	}
	// same shape, different callable: unequal
	if a.Equal(c) {
		t.Error("bindings around distinct callables compared equal")
	}
}

func TestNativeFunc_EqualNil(t *testing.T) {
	var nilFn *NativeFunc
	some := &NativeFunc{Name: "print", Impl: &stubCallable{}}

	if !nilFn.Equal(nil) {
		t.Error("nil.Equal(nil) = false")
	}
	if nilFn.Equal(some) || some.Equal(nilFn) {
		t.Error("nil compared equal to a real binding")
	}
}

func TestValueConstructors(t *testing.T) {
	if v := NumberValue(3.5); v.Kind != ValueNumber || v.Num != 3.5 {
		t.Errorf("NumberValue() = %+v", v)
	}
	if v := StringValue("hi"); v.Kind != ValueString || v.Str != "hi" {
		t.Errorf("StringValue() = %+v", v)
	}
	if v := CharValue('a'); v.Kind != ValueChar || v.Ch != 'a' {
		t.Errorf("CharValue() = %+v", v)
	}
	if v := BoolValue(true); v.Kind != ValueBool || !v.Bool {
		t.Errorf("BoolValue() = %+v", v)
	}
	if v := NullValue(); v.Kind != ValueNull {
		t.Errorf("NullValue() = %+v", v)
	}
	if v := AnyValue(); v.Kind != ValueAny {
		t.Errorf("AnyValue() = %+v", v)
	}
	if v := ArrayValue([]ExprID{1, 2}); v.Kind != ValueArray || len(v.Items) != 2 {
		t.Errorf("ArrayValue() = %+v", v)
	}
}
