package models

// OwnClub is the club's own profile. At most one row is ever created.
type OwnClub struct {
	BaseModel
	Name            string  `json:"name" gorm:"size:255;not null"`
	ShortName       string  `json:"short_name" gorm:"size:50;not null"`
	Location        string  `json:"location" gorm:"size:255;not null"`
	ContactEmail    *string `json:"contact_email,omitempty" gorm:"size:254"`
	ContactPhone    *string `json:"contact_phone,omitempty" gorm:"size:15"`
	Website         *string `json:"website,omitempty" gorm:"size:200"`
	EstablishedYear *int    `json:"established_year,omitempty"`
}

// TableName returns the table name for OwnClub
func (OwnClub) TableName() string {
	return "own_clubs"
}
