// Package core contains the plumbing shared by the rop packages: options
// carried in a context and context-aware channel helpers. It holds no Result
// logic of its own.
package core
