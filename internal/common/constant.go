package common

// DefaultDataDir is the application-relative directory holding the account
// file.
const DefaultDataDir = "HomeOwnerFiles"

// UsersFileBase is the account file name without extension.
const UsersFileBase = "users"
