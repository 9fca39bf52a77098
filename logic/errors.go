package logic

import (
	"errors"
	"fmt"
)

// Sentinel errors reported when a formula does not have the shape a
// normal-form operation requires.
var (
	ErrNotCNF = errors.New("formula is not in conjunctive normal form")
	ErrNotDNF = errors.New("formula is not in disjunctive normal form")
)

// A SyntaxError reports malformed formula text. Pos is the rune offset of
// the offending token; Token is empty when the input ended too early.
type SyntaxError struct {
	Pos   int
	Token string
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("syntax error at position %d: %s (got %q)", e.Pos, e.Msg, e.Token)
}

// An UnboundLiteralError reports an evaluation against an interpretation
// that lacks a binding for one of the formula's literals.
type UnboundLiteralError struct {
	Name string
}

func (e *UnboundLiteralError) Error() string {
	return fmt.Sprintf("interpretation lacks a binding for literal %s", e.Name)
}
