package provider

import (
	"bufio"
	"io"
	"sync"
)

type Fallback string

const (
	FallbackCancel Fallback = "cancel"
	FallbackExact  Fallback = "exact"
)

// ScriptedResponder answers payment requests from a per-customer script. Each
// Confirm consumes the next entry for that customer; an exhausted script falls
// back to the configured policy.
type ScriptedResponder struct {
	mu       sync.Mutex
	script   map[int][]string
	fallback Fallback
}

func NewScriptedResponder(script map[int][]string, fallback Fallback) *ScriptedResponder {
	copied := make(map[int][]string, len(script))
	for id, tenders := range script {
		copied[id] = append([]string(nil), tenders...)
	}
	if fallback == "" {
		fallback = FallbackCancel
	}

	return &ScriptedResponder{
		script:   copied,
		fallback: fallback,
	}
}

// ExactResponder tenders exactly the amount due.
type ExactResponder struct{}

func NewExactResponder() *ExactResponder {
	return &ExactResponder{}
}

// TerminalResponder prompts an operator and reads one line per customer.
type TerminalResponder struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalResponder(in *bufio.Reader, out io.Writer) *TerminalResponder {
	return &TerminalResponder{
		in:  in,
		out: out,
	}
}
