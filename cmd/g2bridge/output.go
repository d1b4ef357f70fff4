package main

import (
	"fmt"
	"strings"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/forward"
)

// lifecycle names the fetch and close entry points for a handle-opening
// entry point.
type lifecycle struct {
	fetchSym abi.Symbol
	closeSym abi.Symbol
}

var lifecycles = map[abi.Symbol]lifecycle{
	abi.G2ExportJSONEntityReport:        {abi.G2FetchNext, abi.G2CloseExport},
	abi.G2ExportCSVEntityReport:         {abi.G2FetchNext, abi.G2CloseExport},
	abi.G2DiagnosticGetEntityListBySize: {abi.G2DiagnosticFetchNextEntityBySize, abi.G2DiagnosticCloseEntityListBySize},
	abi.G2ConfigCreate:                  {closeSym: abi.G2ConfigClose},
	abi.G2ConfigLoad:                    {closeSym: abi.G2ConfigClose},
}

// formatOutcome renders the fields a template produces, one per line.
func formatOutcome(out forward.Outcome) string {
	var b strings.Builder
	field := func(name string, v any) {
		fmt.Fprintf(&b, "%-9s %v\n", name+":", v)
	}

	field("template", out.Template)
	if out.Text != "" {
		field("response", strings.TrimRight(out.Text, "\n"))
	}
	if out.Info != "" {
		field("info", out.Info)
	}
	if out.Fixed != "" {
		field("fixed", out.Fixed)
	}
	switch out.Template {
	case abi.TemplateOpen, abi.TemplateOpenUnchecked:
		field("handle", out.Handle)
	case abi.TemplateValue, abi.TemplateValueOut:
		field("value", out.Value)
	case abi.TemplateStruct:
		if out.Value != 0 {
			field("value", out.Value)
		}
	}
	if out.HasCode {
		field("code", out.ReturnCode)
	}
	return b.String()
}
