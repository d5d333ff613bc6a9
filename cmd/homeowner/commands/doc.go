// Package commands defines the homeowner CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (none)              Start the interactive shell
//   - account create      Create an account (the first one becomes admin)
//   - account list        List accounts in creation order
//   - account delete      Delete an account by username
//   - account clear       Delete every account
//   - login               Check a username and password
//
// # Implementation
//
// The root command loads configuration, builds the logger, opens the account
// store and creates a session manager before any subcommand runs. The store
// is closed again after the command finishes.
package commands
