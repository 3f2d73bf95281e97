package models

// Sponsor is a business supporting the club
type Sponsor struct {
	BaseModel
	Name    string `json:"name" gorm:"size:255;not null"`
	LogoKey string `json:"logo_key" gorm:"size:255"` // object key in the logo bucket
	LogoURL string `json:"logo_url" gorm:"size:500"`
	Website string `json:"website" gorm:"size:200;not null"`
}

// TableName returns the table name for Sponsor
func (Sponsor) TableName() string {
	return "sponsors"
}
