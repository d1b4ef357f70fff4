package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is the broad class of an engine failure.
type Category string

const (
	CategoryUnknown       Category = "unknown"
	CategoryBadInput      Category = "bad_input"
	CategoryRetryable     Category = "retryable"
	CategoryUnrecoverable Category = "unrecoverable"
)

// Reason narrows an engine failure within its category.
type Reason string

const (
	ReasonUnknown                Reason = "unknown"
	ReasonBadInput               Reason = "bad_input"
	ReasonConfiguration          Reason = "configuration"
	ReasonDatabase               Reason = "database"
	ReasonDatabaseConnectionLost Reason = "database_connection_lost"
	ReasonMalformedJSON          Reason = "malformed_json"
	ReasonMessageBuffer          Reason = "message_buffer"
	ReasonModuleEmptyMessage     Reason = "module_empty_message"
	ReasonModuleGeneric          Reason = "module_generic"
	ReasonModuleInvalidXML       Reason = "module_invalid_xml"
	ReasonLicense                Reason = "license"
	ReasonNotInitialized         Reason = "not_initialized"
	ReasonResolveMissingResEnt   Reason = "resolve_missing_res_ent"
	ReasonNotFound               Reason = "not_found"
	ReasonRepositoryPurged       Reason = "repository_purged"
	ReasonRetryTimeoutExceeded   Reason = "retry_timeout_exceeded"
	ReasonUnacceptableJSON       Reason = "unacceptable_json_key_value"
	ReasonUnhandled              Reason = "unhandled"
)

type classification struct {
	reason   Reason
	category Category
}

// exceptionCodes maps engine exception codes to their classification.
var exceptionCodes = map[int]classification{
	1:     {ReasonModuleInvalidXML, CategoryUnrecoverable},
	2:     {ReasonUnhandled, CategoryUnrecoverable},
	7:     {ReasonModuleEmptyMessage, CategoryUnrecoverable},
	10:    {ReasonRetryTimeoutExceeded, CategoryRetryable},
	23:    {ReasonUnacceptableJSON, CategoryBadInput},
	24:    {ReasonUnacceptableJSON, CategoryBadInput},
	25:    {ReasonUnacceptableJSON, CategoryBadInput},
	26:    {ReasonUnacceptableJSON, CategoryBadInput},
	27:    {ReasonNotFound, CategoryBadInput},
	32:    {ReasonUnacceptableJSON, CategoryBadInput},
	33:    {ReasonNotFound, CategoryBadInput},
	34:    {ReasonConfiguration, CategoryRetryable},
	35:    {ReasonConfiguration, CategoryRetryable},
	36:    {ReasonConfiguration, CategoryRetryable},
	37:    {ReasonNotFound, CategoryBadInput},
	47:    {ReasonModuleGeneric, CategoryUnrecoverable},
	48:    {ReasonNotInitialized, CategoryUnrecoverable},
	49:    {ReasonNotInitialized, CategoryUnrecoverable},
	50:    {ReasonNotInitialized, CategoryUnrecoverable},
	51:    {ReasonUnacceptableJSON, CategoryBadInput},
	53:    {ReasonNotInitialized, CategoryUnrecoverable},
	54:    {ReasonRepositoryPurged, CategoryRetryable},
	61:    {ReasonConfiguration, CategoryRetryable},
	62:    {ReasonConfiguration, CategoryRetryable},
	63:    {ReasonNotInitialized, CategoryUnrecoverable},
	64:    {ReasonConfiguration, CategoryRetryable},
	999:   {ReasonLicense, CategoryUnrecoverable},
	1001:  {ReasonDatabase, CategoryUnrecoverable},
	1007:  {ReasonDatabaseConnectionLost, CategoryRetryable},
	2089:  {ReasonNotFound, CategoryBadInput},
	2134:  {ReasonResolveMissingResEnt, CategoryUnrecoverable},
	2208:  {ReasonConfiguration, CategoryRetryable},
	7221:  {ReasonConfiguration, CategoryRetryable},
	7344:  {ReasonNotFound, CategoryBadInput},
	7426:  {ReasonBadInput, CategoryBadInput},
	9000:  {ReasonLicense, CategoryUnrecoverable},
	30020: {ReasonUnacceptableJSON, CategoryBadInput},
	30110: {ReasonMessageBuffer, CategoryRetryable},
	30111: {ReasonMessageBuffer, CategoryRetryable},
	30112: {ReasonMessageBuffer, CategoryRetryable},
	30121: {ReasonMalformedJSON, CategoryBadInput},
	30122: {ReasonMalformedJSON, CategoryBadInput},
	30123: {ReasonMalformedJSON, CategoryBadInput},
}

// Classify returns the reason and category for an engine exception code.
func Classify(code int) (Reason, Category) {
	if c, ok := exceptionCodes[code]; ok {
		return c.reason, c.category
	}
	return ReasonUnknown, CategoryUnknown
}

// ParseException splits an engine exception message of the form
// "0037E|Unknown resolved entity value '-4'" into its code and text.
// Messages without a code prefix return code 0 and the whole message.
func ParseException(msg string) (int, string) {
	head, text, found := strings.Cut(msg, "|")
	if !found {
		return 0, msg
	}
	digits := strings.TrimRight(head, "EWI")
	code, err := strconv.Atoi(digits)
	if err != nil {
		return 0, msg
	}
	return code, text
}

// EngineError is a non-zero engine return code together with the engine's
// last exception at the time of the failure.
type EngineError struct {
	Component  string
	Symbol     string
	Message    string
	Reason     Reason
	Category   Category
	ReturnCode int64
	Code       int
}

// NewEngineError builds an EngineError for symbol. exception is the engine's
// last exception text, code its exception code; code 0 is taken from the
// text when present.
func NewEngineError(symbol string, returnCode int64, code int, exception string) *EngineError {
	parsed, text := ParseException(exception)
	if code == 0 {
		code = parsed
	}
	reason, category := Classify(code)
	return &EngineError{
		Component:  componentOf(symbol),
		Symbol:     symbol,
		ReturnCode: returnCode,
		Code:       code,
		Message:    text,
		Reason:     reason,
		Category:   category,
	}
}

// Error implements the error interface
func (e *EngineError) Error() string {
	var b strings.Builder
	b.WriteString("[engine] ")
	b.WriteString(e.Symbol)
	b.WriteString(" returned ")
	b.WriteString(strconv.FormatInt(e.ReturnCode, 10))
	if e.Code != 0 {
		b.WriteString(fmt.Sprintf(" (%04d %s)", e.Code, e.Reason))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is matches category and reason sentinels as well as other engine errors
// with the same symbol and code.
func (e *EngineError) Is(target error) bool {
	switch t := target.(type) {
	case *categoryError:
		return e.Category == t.category
	case *reasonError:
		return e.Reason == t.reason
	case *EngineError:
		return e.Symbol == t.Symbol && e.Code == t.Code
	}
	return false
}

// Retryable reports whether the call may succeed if repeated.
func (e *EngineError) Retryable() bool {
	return e.Category == CategoryRetryable
}

type categoryError struct {
	category Category
}

func (e *categoryError) Error() string {
	return "engine error: " + string(e.category)
}

type reasonError struct {
	reason Reason
}

func (e *reasonError) Error() string {
	return "engine error: " + string(e.reason)
}

// Sentinels for errors.Is against EngineError.
var (
	ErrBadInput      error = &categoryError{CategoryBadInput}
	ErrRetryable     error = &categoryError{CategoryRetryable}
	ErrUnrecoverable error = &categoryError{CategoryUnrecoverable}

	ErrNotFound               error = &reasonError{ReasonNotFound}
	ErrConfiguration          error = &reasonError{ReasonConfiguration}
	ErrDatabaseConnectionLost error = &reasonError{ReasonDatabaseConnectionLost}
	ErrLicense                error = &reasonError{ReasonLicense}
	ErrNotInitialized         error = &reasonError{ReasonNotInitialized}
	ErrMalformedJSON          error = &reasonError{ReasonMalformedJSON}
	ErrUnacceptableJSON       error = &reasonError{ReasonUnacceptableJSON}
	ErrRepositoryPurged       error = &reasonError{ReasonRepositoryPurged}
)
