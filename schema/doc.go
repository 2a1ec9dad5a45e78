// Package schema defines the wire types exchanged with the user data store
// and the tagged error variant shared by all client-raised failures.
package schema
