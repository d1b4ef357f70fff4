package abi

// Template is the call shape a forwarding function follows.
type Template uint8

const (
	// TemplateStatus returns the engine code only.
	TemplateStatus Template = iota
	// TemplateString fills one growable buffer and swallows the code:
	// failure reads as an empty string.
	TemplateString
	// TemplateStruct produces several outputs and keeps the code.
	TemplateStruct
	// TemplateOpen creates a handle and keeps the code.
	TemplateOpen
	// TemplateOpenUnchecked creates a handle and discards the code.
	TemplateOpenUnchecked
	// TemplateFetch reads the next item of a handle into a fixed buffer.
	TemplateFetch
	// TemplateClose releases a handle.
	TemplateClose
	// TemplateFixed fills a caller-owned fixed buffer and keeps the code.
	TemplateFixed
	// TemplateValue returns the engine's return value as is.
	TemplateValue
	// TemplateValueOut reads a 64-bit out-parameter and discards the code.
	TemplateValueOut
	// TemplateVoid returns nothing.
	TemplateVoid
	// TemplateText returns a static string owned by the engine.
	TemplateText
)

var templateNames = [...]string{
	TemplateStatus:        "status",
	TemplateString:        "string",
	TemplateStruct:        "struct",
	TemplateOpen:          "open",
	TemplateOpenUnchecked: "open_unchecked",
	TemplateFetch:         "fetch",
	TemplateClose:         "close",
	TemplateFixed:         "fixed",
	TemplateValue:         "value",
	TemplateValueOut:      "value_out",
	TemplateVoid:          "void",
	TemplateText:          "text",
}

func (t Template) String() string {
	if int(t) < len(templateNames) {
		return templateNames[t]
	}
	return "unknown"
}

// Propagates reports whether the engine return code reaches the caller.
func (t Template) Propagates() bool {
	switch t {
	case TemplateString, TemplateOpenUnchecked, TemplateValueOut, TemplateVoid, TemplateText, TemplateValue:
		return false
	}
	return true
}

// ReturnsStatus reports whether the engine return value is a status code,
// whether or not the template passes it on.
func (t Template) ReturnsStatus() bool {
	switch t {
	case TemplateValue, TemplateVoid, TemplateText:
		return false
	}
	return true
}
