package models

// Country is the root of the geographic hierarchy.
// Rows come from seed/admin data only.
type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`

	Cities []City `gorm:"foreignKey:CountryID" json:"cities,omitempty"`
}

// TableName specifies the table name for Country model
func (Country) TableName() string {
	return "countries"
}

// City belongs to a Country.
type City struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	CountryID uint   `gorm:"not null;index" json:"country_id"`

	Country Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Areas   []Area  `gorm:"foreignKey:CityID" json:"areas,omitempty"`
}

// TableName specifies the table name for City model
func (City) TableName() string {
	return "cities"
}

// Area is the smallest geographic unit hosting hospitals.
type Area struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	CityID uint   `gorm:"not null;index" json:"city_id"`

	City City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

// TableName specifies the table name for Area model
func (Area) TableName() string {
	return "areas"
}
