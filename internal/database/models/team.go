package models

// Team represents a sports team. The access code is the unique join token a
// player presents to self-enroll.
type Team struct {
	BaseModel
	Name       string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Nickname   string `json:"nickname" gorm:"size:50" validate:"max=50"`
	Sport      string `json:"sport" gorm:"size:50" validate:"max=50"`
	AccessCode string `json:"access_code" gorm:"not null;size:12;uniqueIndex"`

	// Relationships
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:TeamID"`
	Games       []Game       `json:"games,omitempty" gorm:"foreignKey:TeamID"`
	Invites     []Invite     `json:"invites,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
