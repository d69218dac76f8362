// Package domain contains the core business entities for bindery:
// document entries, the ordered collection under manipulation, parsed
// page-range specifications, and output-name derivation.
//
// Domain types are pure in-memory state machines. They perform no I/O
// and never talk to the worker process directly.
package domain
