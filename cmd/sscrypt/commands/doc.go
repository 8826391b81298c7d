// Package commands defines the sscrypt command tree: keygen, encrypt, and
// decrypt, mapping CLI flags onto the services wired up in internal/app.
package commands
