package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	be.True(t, st != nil)
	be.Equal(t, st.Depth(), 0)
	be.Equal(t, len(st.Current().Names()), 0)
}

func TestDeclareVariable(t *testing.T) {
	st := NewSymbolTable()

	entry := st.Declare("x", TypeInteger)
	be.Equal(t, entry.Name, "x")
	be.Equal(t, entry.Type, TypeInteger)
	be.Equal(t, entry.ScopeDepth, 0)
	be.Equal(t, entry.Declared, false)
	be.Equal(t, st.Current().Names(), []string{"x"})
}

func TestDeclareVariableTwiceUpdatesEntry(t *testing.T) {
	st := NewSymbolTable()

	first := st.Declare("x", TypeInteger)
	second := st.Declare("x", TypeFloat)
	be.True(t, first == second)
	be.Equal(t, second.Type, TypeFloat)
	be.Equal(t, st.Current().Names(), []string{"x"})
}

func TestLookupVariable(t *testing.T) {
	st := NewSymbolTable()

	be.True(t, st.Lookup("x") == nil)

	st.Declare("x", TypeText)
	symbol := st.Lookup("x")
	be.True(t, symbol != nil)
	be.Equal(t, symbol.Name, "x")
	be.Equal(t, symbol.Type, TypeText)
}

func TestMarkDeclared(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("x", TypeInteger)

	st.MarkDeclared("x")
	be.Equal(t, st.Lookup("x").Declared, true)
}

func TestMarkDeclaredUnknownPanics(t *testing.T) {
	st := NewSymbolTable()
	defer func() {
		r := recover()
		be.Equal(t, r, any("MarkDeclared: variable 'x' not found"))
	}()
	st.MarkDeclared("x")
}

func TestLookupWalksOutward(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("outer", TypeInteger)

	st.EnterScope()
	be.Equal(t, st.Depth(), 1)
	inner := st.Declare("inner", TypeFloat)
	be.Equal(t, inner.ScopeDepth, 1)

	be.True(t, st.Lookup("outer") != nil)
	be.True(t, st.Lookup("inner") != nil)
	be.True(t, st.LookupLocal("outer") == nil)
	be.True(t, st.LookupLocal("inner") != nil)

	st.ExitScope()
	be.Equal(t, st.Depth(), 0)
	be.True(t, st.Lookup("inner") == nil)
	be.True(t, st.Lookup("outer") != nil)
}

func TestExitOutermostScopePanics(t *testing.T) {
	st := NewSymbolTable()
	defer func() {
		r := recover()
		be.Equal(t, r, any("ExitScope called on the outermost scope"))
	}()
	st.ExitScope()
}

func TestScopeNamesKeepDeclarationOrder(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("b", TypeInteger)
	st.Declare("a", TypeInteger)
	st.Declare("b", TypeInteger)
	be.Equal(t, st.Current().Names(), []string{"b", "a"})
}
