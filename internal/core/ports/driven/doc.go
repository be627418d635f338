// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TabProvider: Lists the browser's open tabs
//   - BookmarkProvider: Returns the bookmark tree
//   - HistoryProvider: Returns recent history entries
//   - ClosedTabProvider: Returns recently closed sessions
//   - BrowserActions: Activates tabs, opens URLs, restores sessions
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ClosedTabStore: Journal of closed tabs. Without it, restore falls back
//     to opening the URL.
//   - Clipboard: System clipboard. Without it, copy actions fail.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
