// Package credential holds login records: username, password hash, role and first-login flag.
package credential
