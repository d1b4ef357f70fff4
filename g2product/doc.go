// Package g2product is the client for the engine's product component:
// license and version information.
package g2product
