// Package accounts provides the durable storage backends for the account
// set.
//
// # Overview
//
// Every backend implements Repository: Load returns the whole ordered set,
// Save replaces it. Nothing is ever written as a delta. Three backends exist,
// each keeping one file under the data directory:
//
//   - tsv     users.tsv      versioned line-oriented table (default)
//   - msgpack users.msgpack  versioned MessagePack envelope
//   - sqlite  users.db       SQLite database, schema managed by goose
//
// # TSV format
//
// The first line is the header "# homeowner-users v1". Each following line is
// one account:
//
//	id<TAB>username<TAB>password<TAB>isAdmin<TAB>createdAt
//
// id is a UUID, isAdmin is "true" or "false", createdAt is RFC 3339 with
// nanoseconds. Backslash, tab, CR and LF inside username and password are
// written as \\, \t, \r and \n.
//
// # Errors
//
// Load returns common.ErrNoData when nothing has been persisted yet,
// *common.CorruptStateError when data exists but cannot be decoded and
// *common.StorageError for I/O failures. Save returns *common.StorageError.
package accounts
