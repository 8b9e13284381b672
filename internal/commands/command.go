package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeRename Type = "rename"
	TypeFilter Type = "filter"
	TypeSave   Type = "save"
	TypeClear  Type = "clear"
	TypeCopy   Type = "copy"
)

var aliases = map[string]Type{
	"rm":   TypeDelete,
	"del":  TypeDelete,
	"edit": TypeRename,
	"done": TypeToggle,
	"show": TypeFilter,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Ref points at a task either by 1-based row in the visible list or by id.
type Ref struct {
	Row int
	ID  string
}

type AddArgs struct {
	Name string
}

type RefArgs struct {
	Target Ref
}

type RenameArgs struct {
	Target Ref
	Name   string
}

type FilterArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Ref    *RefArgs
	Rename *RenameArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)
	kind := Type(head)
	if alias, ok := aliases[head]; ok {
		kind = alias
	}

	switch kind {
	case TypeAdd:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
		}
		return Command{Type: kind, Raw: input, Add: &AddArgs{Name: rest}}, nil
	case TypeToggle, TypeDelete, TypeCopy:
		ref, err := parseRef(head, rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: kind, Raw: input, Ref: &RefArgs{Target: ref}}, nil
	case TypeRename:
		target, name, _ := strings.Cut(rest, " ")
		name = strings.TrimSpace(name)
		ref, err := parseRef(head, target)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: kind, Raw: input, Rename: &RenameArgs{Target: ref, Name: name}}, nil
	case TypeFilter:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, active or completed"}
		}
		return Command{Type: kind, Raw: input, Filter: &FilterArgs{Name: rest}}, nil
	case TypeSave, TypeClear:
		return Command{Type: kind, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseRef(head, raw string) (Ref, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Ref{}, &CommandError{Code: ErrCodeInvalidArgument, Message: head + " requires a row number or task id"}
	}
	if row, err := strconv.Atoi(raw); err == nil {
		if row < 1 {
			return Ref{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "row numbers start at 1"}
		}
		return Ref{Row: row}, nil
	}
	return Ref{ID: raw}, nil
}
