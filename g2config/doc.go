// Package g2config is the client for the engine's configuration editor.
//
//	h, err := cfg.Create(ctx)
//	defer cfg.Close(ctx, h)
//	_, err = cfg.AddDataSource(ctx, h, `{"DSRC_CODE":"CUSTOMERS"}`)
//	doc, err := cfg.Save(ctx, h)
package g2config
