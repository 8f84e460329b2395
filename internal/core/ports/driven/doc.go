// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration (TOML file)
//   - LocaleCatalog: Day and month name tables by language tag
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LayoutStore: Run history. Without it, booklets are not recorded.
//   - PageRenderer: Turns imposed pages into documents. Only the generate
//     command needs one.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
