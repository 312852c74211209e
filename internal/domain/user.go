package domain

import "time"

// UserRole is the coarse role claim attached to an authenticated principal.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleSales   UserRole = "sales"
	RoleTech    UserRole = "tech"
)

// User is the locally stored profile for an authenticated principal.
// Identity issuance lives with the auth provider; this record only carries
// the role and activity flag the API gates on.
type User struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Email     string    `gorm:"type:text;not null;uniqueIndex:idx_users_email" json:"email"`
	FirstName string    `gorm:"type:text" json:"first_name,omitempty"`
	LastName  string    `gorm:"type:text" json:"last_name,omitempty"`
	Role      UserRole  `gorm:"type:text;default:tech" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}
