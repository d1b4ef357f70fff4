// Package client holds the plumbing shared by the component clients
// (g2engine, g2config, g2configmgr, g2diagnostic, g2product).
//
// A Base wraps a forward.Forwarder for one engine component. It turns the
// non-zero codes of propagating templates into *errors.EngineError values
// built from the component's last exception, and optionally does the same
// for string results that came back empty (WithStrictErrors).
package client
