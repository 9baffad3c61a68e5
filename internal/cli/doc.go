// Package cli implements the interactive gallery client: a small REPL over
// the auth facade and the store. Commands are gated by login state, and the
// account-management surface is only offered to admins; the store itself
// performs no role checks, which is acceptable only because nothing but
// this process ever holds a reference to it.
package cli
