// Package cli implements the interactive shell of the memo client.
//
// The shell keeps one session alive: it signs in against the memo
// service, mirrors the merged user record in the in-memory store, and
// exposes commands for profile and setting mutations. A lightweight
// "open <path>" command stands in for navigation, driving the visitor
// mode and effective-user resolution the same way a browser location
// would.
package cli
