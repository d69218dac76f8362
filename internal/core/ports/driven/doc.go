// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Worker: the out-of-process PDF worker (merge, split, metadata)
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
//   - JobStore: completed-job history; nil disables history
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
