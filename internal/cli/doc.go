// Package cli provides the interactive sheetdash terminal client.
//
// It wires configuration, the local store, the API client, the session
// manager and the realtime channel into a REPL. Typical flow: restore the
// session from a stored token, then execute user commands.
//
// Key commands:
//   - login / signup / logout
//   - list — list the account's tables
//   - create — run the two-step table creation wizard
//   - open <n> — open a table in the live grid view
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits. The live grid view is a Bubble Tea program; see tableview.go.
package cli
