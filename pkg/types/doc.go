// Package types defines the Contact record, the Persister interface that
// storage backends implement, configuration, and the standard errors of the
// contacts program.
package types
