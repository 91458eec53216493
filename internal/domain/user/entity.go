package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Product operator - manages station admins
	RoleAdmin      Role = "admin"       // Station owner - manages staff, stock, expenses
	RoleStaff      Role = "staff"       // Pump attendant - sales entry and attendance
)

type User struct {
	ID           string
	Username     string
	Email        string
	Phone        *string
	PasswordHash *string
	Role         Role

	// Station geofence, set for admins. Staff check-ins are validated against
	// their admin's geofence when a radius is configured.
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *int

	// AdminID links a staff member to the admin who registered them.
	AdminID *string

	OAuthProvider   *string
	OAuthProviderID *string

	PasswordResetToken  *string
	PasswordResetSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSuperAdmin checks if the user operates the product itself
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin checks if the user owns a station
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff checks if the user is a pump attendant
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

// HasGeofence reports whether a usable check-in geofence is configured.
func (u *User) HasGeofence() bool {
	return u.Latitude != nil && u.Longitude != nil && u.RadiusMeters != nil && *u.RadiusMeters > 0
}
