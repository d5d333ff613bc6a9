// Package services holds the account core: AccountStore, which owns the
// ordered account set and keeps it in sync with a durable repository, and
// SessionManager, which layers login state on top of a store.
//
// Neither type performs any user interaction. Failures are reported as
// errors from internal/common and are matched with errors.Is.
package services
