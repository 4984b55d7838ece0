//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// RoleTypeAuthenticated is the role every OAuth-bootstrapped user is attached
// to. It is assumed to exist; migrations create it.
const RoleTypeAuthenticated = "authenticated"

// Role is an authorization role. Type is the stable lookup key ("authenticated",
// "public"); Name is the display label.
type Role struct {
	ID          int64     `json:"id"          db:"id"`
	Name        string    `json:"name"        db:"name"`
	Type        string    `json:"type"        db:"type"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
}

// PermissionGrant attaches a named action to a role. The (action, role_id)
// pair is unique; seeding checks existence before creating.
type PermissionGrant struct {
	ID        int64     `json:"id"         db:"id"`
	Action    string    `json:"action"     db:"action"`
	RoleID    int64     `json:"role_id"    db:"role_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
