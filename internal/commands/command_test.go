package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"toggle 2", TypeToggle},
		{"done todo-abc", TypeToggle},
		{"rm 1", TypeDelete},
		{"rename 3 new name", TypeRename},
		{"filter active", TypeFilter},
		{"save", TypeSave},
		{"clear", TypeClear},
		{"copy 1", TypeCopy},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddKeepsSpacing(t *testing.T) {
	cmd, err := Parse("/add   buy  milk ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Name != "buy  milk" {
		t.Fatalf("unexpected name: %q", cmd.Add.Name)
	}
}

func TestParseRefs(t *testing.T) {
	cmd, err := Parse("toggle 3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Ref.Target != (Ref{Row: 3}) {
		t.Fatalf("expected row ref, got %+v", cmd.Ref.Target)
	}

	cmd, err = Parse("delete todo-42x")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Ref.Target != (Ref{ID: "todo-42x"}) {
		t.Fatalf("expected id ref, got %+v", cmd.Ref.Target)
	}

	cmd, err = Parse("rename 2 walk the dog")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Rename.Target.Row != 2 || cmd.Rename.Name != "walk the dog" {
		t.Fatalf("unexpected rename args: %+v", cmd.Rename)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"toggle 0", ErrCodeInvalidArgument},
		{"filter", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Name != "write docs" {
				t.Fatalf("unexpected name: %q", a.Name)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("save")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
