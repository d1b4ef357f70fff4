// Package response decodes the JSON documents the engine returns into Go
// types.
//
// Only the commonly read fields are modelled. Unknown fields are ignored, so
// the types keep working across engine versions that add to their replies.
//
//	doc, err := eng.GetEntityByEntityIDV2(ctx, 1, g2engine.EntityDefaultFlags)
//	if err != nil {
//		return err
//	}
//	entity, err := response.DecodeEntity(doc)
//
// The component clients also offer typed shortcuts built on these decoders,
// such as g2engine.Engine.Entity and g2configmgr.Manager.ConfigList.
package response
