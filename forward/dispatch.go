package forward

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/handle"
)

// Outcome is the template-independent view of a call, used by tools that
// pick entry points at run time.
type Outcome struct {
	Template   abi.Template
	Text       string
	Info       string
	Fixed      string
	Handle     handle.Token
	Value      int64
	ReturnCode int64
	// HasCode is false when the template does not report the engine code.
	HasCode bool
}

// Dispatch forwards sym through whatever template it is mapped to. Fetch and
// close take their handle as the first argument.
func (f *Forwarder) Dispatch(ctx context.Context, sym abi.Symbol, args ...any) (Outcome, error) {
	spec, ok := abi.Lookup(sym)
	if !ok {
		return Outcome{}, errors.NotFound(errors.PhaseLower, "entry point", string(sym))
	}
	out := Outcome{Template: spec.Template, HasCode: spec.Template.Propagates()}

	var err error
	switch spec.Template {
	case abi.TemplateStatus:
		out.ReturnCode, err = f.Status(ctx, sym, args...)
	case abi.TemplateString:
		out.Text, err = f.String(ctx, sym, args...)
	case abi.TemplateStruct:
		var res Result
		res, err = f.Struct(ctx, sym, args...)
		out.Text, out.Info, out.Fixed, out.Value, out.ReturnCode = res.Response, res.Info, res.Fixed, res.Value, res.ReturnCode
	case abi.TemplateOpen:
		var op Opened
		op, err = f.Open(ctx, sym, args...)
		out.Handle, out.ReturnCode = op.Handle, op.ReturnCode
	case abi.TemplateOpenUnchecked:
		out.Handle, err = f.OpenUnchecked(ctx, sym, args...)
	case abi.TemplateFetch, abi.TemplateClose:
		h, herr := handleArg(sym, args)
		if herr != nil {
			return out, herr
		}
		if spec.Template == abi.TemplateClose {
			out.ReturnCode, err = f.Close(ctx, sym, h)
			break
		}
		var tr TextResult
		tr, err = f.Fetch(ctx, sym, h, make([]byte, f.fixedSize))
		out.Text, out.ReturnCode = tr.Text, tr.ReturnCode
	case abi.TemplateFixed:
		var tr TextResult
		tr, err = f.Fixed(ctx, sym, 0, args...)
		out.Text, out.ReturnCode = tr.Text, tr.ReturnCode
	case abi.TemplateValue:
		out.Value, err = f.Value(ctx, sym, args...)
	case abi.TemplateValueOut:
		out.Value, err = f.ValueOut(ctx, sym, args...)
	case abi.TemplateVoid:
		err = f.Void(ctx, sym, args...)
	case abi.TemplateText:
		out.Text, err = f.Text(ctx, sym, args...)
	default:
		err = errors.Unsupported(errors.PhaseLower, "template "+spec.Template.String())
	}
	return out, err
}

func handleArg(sym abi.Symbol, args []any) (handle.Token, error) {
	if len(args) != 1 {
		return 0, errors.Arity(errors.PhaseLower, string(sym), len(args), 1)
	}
	h, ok := args[0].(handle.Token)
	if !ok {
		return 0, errors.TypeMismatch(errors.PhaseLower, []string{string(sym), "0"}, fmt.Sprintf("%T", args[0]), "handle")
	}
	return h, nil
}

// ParseArgs converts textual arguments to the Go types spec expects.
func ParseArgs(spec abi.Spec, raw []string) ([]any, error) {
	if len(raw) != len(spec.Params) {
		return nil, errors.Arity(errors.PhaseLower, string(spec.Symbol), len(raw), len(spec.Params))
	}
	args := make([]any, len(raw))
	for i, p := range spec.Params {
		v, err := parseParam(p, raw[i])
		if err != nil {
			return nil, errors.New(errors.PhaseLower, errors.KindInvalidData).
				Path(string(spec.Symbol), paramName(spec, i)).
				GoType("string").
				WantType(p.String()).
				Cause(err).
				Build()
		}
		args[i] = v
	}
	return args, nil
}

func parseParam(p abi.Param, s string) (any, error) {
	switch p {
	case abi.ParamString:
		return s, nil
	case abi.ParamInt64:
		return strconv.ParseInt(s, 0, 64)
	case abi.ParamInt32:
		v, err := strconv.ParseInt(s, 0, 32)
		return int32(v), err
	case abi.ParamSize:
		return strconv.ParseUint(s, 0, 64)
	case abi.ParamHandle:
		return handle.Parse(s)
	}
	return nil, errors.Unsupported(errors.PhaseLower, p.String())
}

func paramName(spec abi.Spec, i int) string {
	if i < len(spec.Names) {
		return spec.Names[i]
	}
	return strconv.Itoa(i)
}
