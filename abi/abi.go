package abi

import (
	"context"
	"fmt"
	"strings"

	"github.com/wippyai/g2-bridge/buffer"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/handle"
)

// Component is the engine subsystem a symbol belongs to.
type Component string

const (
	ComponentEngine     Component = "G2"
	ComponentConfig     Component = "G2Config"
	ComponentConfigMgr  Component = "G2ConfigMgr"
	ComponentDiagnostic Component = "G2Diagnostic"
	ComponentProduct    Component = "G2Product"
)

// Components lists every component in table order.
var Components = []Component{
	ComponentEngine,
	ComponentConfig,
	ComponentConfigMgr,
	ComponentDiagnostic,
	ComponentProduct,
}

// Symbol is the C name of an engine entry point.
type Symbol string

// Component returns the symbol's subsystem prefix.
func (s Symbol) Component() Component {
	comp, _, _ := strings.Cut(string(s), "_")
	return Component(comp)
}

// Method returns the symbol without its component prefix.
func (s Symbol) Method() string {
	_, method, _ := strings.Cut(string(s), "_")
	return method
}

// Param is the C type of one input argument.
type Param uint8

const (
	ParamString Param = iota + 1 // const char*, passed as Go string
	ParamInt64                   // long long, passed as int64
	ParamInt32                   // int, passed as int32
	ParamSize                    // size_t, passed as uint64
	ParamHandle                  // opaque handle, passed as handle.Token
)

func (p Param) String() string {
	switch p {
	case ParamString:
		return "string"
	case ParamInt64:
		return "int64"
	case ParamInt32:
		return "int32"
	case ParamSize:
		return "size"
	case ParamHandle:
		return "handle"
	default:
		return fmt.Sprintf("param(%d)", uint8(p))
	}
}

// Output is a bit set of the out-parameters an entry point writes.
type Output uint8

const (
	OutFixed  Output = 1 << iota // caller-owned fixed buffer
	OutBuffer                    // growable response buffer
	OutInfo                      // second growable buffer
	OutHandle                    // handle out-parameter
	OutValue                     // long long out-parameter
)

// Return is the C return type of an entry point.
type Return uint8

const (
	ReturnInt32 Return = iota // int: status code or small value
	ReturnInt64               // long long value
	ReturnText                // static C string
	ReturnVoid
)

// Spec describes one entry point.
type Spec struct {
	Symbol   Symbol
	Params   []Param
	Names    []string
	Template Template
	Outputs  Output
	Returns  Return
}

// Has reports whether the entry point writes o.
func (s Spec) Has(o Output) bool {
	return s.Outputs&o != 0
}

// Buffers returns the number of growable buffers the entry point takes.
func (s Spec) Buffers() int {
	n := 0
	if s.Has(OutBuffer) {
		n++
	}
	if s.Has(OutInfo) {
		n++
	}
	return n
}

// Signature renders the spec as a short human-readable prototype.
func (s Spec) Signature() string {
	var b strings.Builder
	b.WriteString(string(s.Symbol))
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(s.Names) {
			b.WriteString(s.Names[i])
			b.WriteString(": ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") ")
	b.WriteString(s.Template.String())
	return b.String()
}

// Call is a single engine invocation. Backends read the inputs and fill in
// the outputs the spec names.
type Call struct {
	Symbol  Symbol
	Args    []any
	Fixed   []byte
	Buffers []*buffer.Buffer
	Text    string
	Handle  handle.Token
	Value   int64
}

// Check verifies that call carries what spec expects.
func (s Spec) Check(call *Call) error {
	if len(call.Args) != len(s.Params) {
		return errors.Arity(errors.PhaseLower, string(s.Symbol), len(call.Args), len(s.Params))
	}
	for i, p := range s.Params {
		if !accepts(p, call.Args[i]) {
			return errors.TypeMismatch(errors.PhaseLower,
				[]string{string(s.Symbol), fmt.Sprint(i)},
				fmt.Sprintf("%T", call.Args[i]), p.String())
		}
	}
	if s.Has(OutFixed) && call.Fixed == nil {
		return errors.NilPointer(errors.PhaseLower, []string{string(s.Symbol), "fixed"}, "[]byte")
	}
	if len(call.Buffers) != s.Buffers() {
		return errors.InvalidInput(errors.PhaseLower,
			fmt.Sprintf("%s takes %d response buffers, got %d", s.Symbol, s.Buffers(), len(call.Buffers)))
	}
	for i, b := range call.Buffers {
		if b == nil {
			return errors.NilPointer(errors.PhaseLower, []string{string(s.Symbol), "buffer", fmt.Sprint(i)}, "*buffer.Buffer")
		}
	}
	return nil
}

func accepts(p Param, v any) bool {
	switch p {
	case ParamString:
		_, ok := v.(string)
		return ok
	case ParamInt64:
		_, ok := v.(int64)
		return ok
	case ParamInt32:
		_, ok := v.(int32)
		return ok
	case ParamSize:
		_, ok := v.(uint64)
		return ok
	case ParamHandle:
		_, ok := v.(handle.Token)
		return ok
	}
	return false
}

// Library is a loaded engine. Invoke performs one engine call and returns
// the engine's raw return value; a non-nil error means the call could not be
// made or its outputs could not be read, never an engine failure code.
type Library interface {
	Invoke(ctx context.Context, call *Call) (int64, error)
	Close(ctx context.Context) error
}
