// Package g2engine is the client for the engine's core component: record
// ingestion, entity lookup, path and network search, redo processing and
// export.
//
// Methods backed by a string-result entry point return "" when the engine
// fails and no error, unless the client was built with
// client.WithStrictErrors. All other failures come back as
// *errors.EngineError.
//
//	eng := g2engine.New(fw, client.WithStrictErrors())
//	if err := eng.Init(ctx, "app", settings, 0); err != nil { ... }
//	export, err := eng.ExportJSONEntityReport(ctx, g2engine.ExportDefaultFlags)
//	defer export.Close(ctx)
//	for doc, err := range export.All(ctx) { ... }
package g2engine
