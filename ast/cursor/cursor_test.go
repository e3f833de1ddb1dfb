// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/creachadair/jerk"
	"github.com/creachadair/jerk/ast"
	"github.com/creachadair/jerk/ast/cursor"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func mustParse(t *testing.T, src string) ast.Value {
	t.Helper()
	v, err := ast.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return v
}

func number(n int) ast.Value {
	return ast.NewAtom(jerk.Token{Kind: jerk.Number, Text: strconv.Itoa(n)})
}

func TestCursor(t *testing.T) {
	v := mustParse(t, testJSON)
	obj := v.(*ast.Object)
	list := obj.Get("list").(*ast.Array)
	xyz := obj.Get("xyz").(*ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{3.5}, v, true},

		{"ArrayPos", []any{"list", 1}, list.Values[1], false},
		{"ArrayNeg", []any{"list", -1}, list.Values[1], false},
		{"ArrayRange", []any{"o", 25}, obj.Get("o"), true},
		{"ObjPath", []any{"xyz", "d"}, xyz.Get("d"), false},
		{"ObjIndex", []any{"xyz", -1}, xyz.Get("q"), false},
		{"Deep", []any{"list", 0, "x"}, number(1), false},
		{"AtomKey", []any{"y", "hello", "x"}, obj.Get("y").(*ast.Object).Get("hello"), true},

		{"FuncArray", []any{"o", testPathFunc}, number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, xyz.Get("d"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got %s, want error", tc.path, c.Value().JSON())
			}
			if got := c.Value(); !ast.Equal(got, tc.want) {
				t.Errorf("Down %+v: got %s, want %s", tc.path, got.JSON(), tc.want.JSON())
			}
		})
	}
}

func TestUpReset(t *testing.T) {
	v := mustParse(t, testJSON)
	c := cursor.New(v).Down("list", 0, "x")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if n := len(c.Path()); n != 4 {
		t.Errorf("Path: got %d values, want 4", n)
	}
	if got, want := c.Up().Value().JSON(), `{"x":1}`; got != want {
		t.Errorf("Up: got %s, want %s", got, want)
	}
	c.Up().Up().Up() // extra moves at the origin are ignored
	if !c.AtOrigin() {
		t.Errorf("AtOrigin: got false, want true")
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil error, want error")
	}
	c.Reset()
	if c.Err() != nil || !c.AtOrigin() || c.Value() != c.Origin() {
		t.Errorf("Reset: cursor not at origin (err=%v)", c.Err())
	}
}

func TestPath(t *testing.T) {
	v := mustParse(t, testJSON)

	s, err := cursor.Path[*ast.Atom](v, "y", "hello")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if got, want := s.Text(), "there"; got != want {
		t.Errorf("Path: got %q, want %q", got, want)
	}

	if _, err := cursor.Path[*ast.Array](v, "y"); err == nil {
		t.Error("Path: got nil error for wrong type")
	}
	if _, err := cursor.Path[*ast.Atom](v, "nonesuch"); err == nil {
		t.Error("Path: got nil error for missing key")
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case *ast.Array:
		return number(t.Len()), nil
	case *ast.Object:
		return number(t.Len()), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
