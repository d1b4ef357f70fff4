// Package forward runs engine entry points through their call templates.
//
// Every entry point follows one template (see abi.Template). The template
// decides which buffers are seeded, which outputs are read back and whether
// the engine's return code reaches the caller:
//
//	fw := forward.New(lib, forward.WithLogger(log))
//	stats, err := fw.String(ctx, abi.G2Stats)          // code swallowed
//	res, err := fw.Struct(ctx, abi.G2GetRedoRecord)     // code in res.ReturnCode
//	op, err := fw.Open(ctx, abi.G2ExportJSONEntityReport, flags)
//
// A returned error always means the call could not be made or its outputs
// could not be read. Engine failure codes are never turned into errors here;
// the client packages do that.
package forward
