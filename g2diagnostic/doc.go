// Package g2diagnostic is the client for the engine's diagnostic component:
// host and repository information, statistics and entity listings by size.
package g2diagnostic
