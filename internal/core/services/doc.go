// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The search engine is built from three layers: a SourceCache per browser
// source, a FuzzyIndex over each cache, and the SearchEngineState that owns
// both and the shared fuzziness threshold. The QueryCoordinator drives that
// state from keystrokes; SearchService answers one-shot queries.
package services
