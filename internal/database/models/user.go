package models

// User represents an authenticated account, either a coach or a player
type User struct {
	BaseModel
	Email     string   `json:"email" gorm:"not null;size:100;uniqueIndex" validate:"required,email"`
	FirstName string   `json:"first_name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	LastName  string   `json:"last_name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	Role      UserRole `json:"role" gorm:"not null;size:10" validate:"required,oneof=coach player"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
