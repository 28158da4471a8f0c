// Package access defines the role model guarding fleet operations.
//
// Four roles exist. The admin role administers all of them, including
// itself. Capability is a per-request snapshot of the roles an account
// holds, resolved once at the application boundary so command handlers
// can check permissions without touching the role store again.
package access
