// Package cli provides the interactive HomeOwner front end.
//
// App wires a services.SessionManager and the floor plan into a small REPL.
// Handlers return errors from the account core unchanged; the REPL turns
// them into short messages (see Message) so the core never prints.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
