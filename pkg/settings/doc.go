// Package settings provides a registry of named, typed values that small
// utility applications use to remember state across runs. Each setting has
// a default, a current value, and optional getter/setter hooks binding it to
// an external component such as a UI widget. The registry can pull from and
// push to those components in bulk, and persist itself to a TOML file.
//
// The registry's value is authoritative: hooks never mutate it directly.
// Get pulls external state into the registry, Set pushes registry state out,
// and Read/Write move the registry to and from disk.
//
// A Registry is not safe for concurrent use; callers that share one across
// goroutines must provide their own mutual exclusion.
package settings
