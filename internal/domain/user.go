package domain

// Role distinguishes platform staff from club administrators.
type Role string

const (
	// RolePlatformStaff may view aggregate data across all clubs.
	RolePlatformStaff Role = "platform-staff"
	// RoleClubAdmin is restricted to the club named by its ClubID.
	RoleClubAdmin Role = "club-admin"
)

// AuthUser is the currently authenticated dashboard user. ClubID is set iff
// the role is club-admin.
type AuthUser struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	ClubID   string `json:"clubId,omitempty"`
}

// Credential is a row of the static credential table. PasswordHash is a
// bcrypt hash; plaintext passwords are never stored.
type Credential struct {
	Username     string
	PasswordHash string
	Role         Role
	ClubID       string
}
