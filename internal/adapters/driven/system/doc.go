// Package system provides driven adapters backed by the operating system:
// the default URL handler and the system clipboard.
package system
