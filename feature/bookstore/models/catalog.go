package models

// Roles of a user.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	Model
	Name  string `gorm:"type:varchar(120);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Role  string `gorm:"type:varchar(16);not null;default:customer" json:"role"`
}

type Author struct {
	Model
	Name        string `gorm:"type:varchar(255);not null;index" json:"name"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Bio         string `gorm:"type:text" json:"bio,omitempty"`
	CreatedByID string `gorm:"type:varchar(36)" json:"created_by_id,omitempty"`
}

type Category struct {
	Model
	Name        string  `gorm:"type:varchar(120);not null;uniqueIndex" json:"name"`
	Code        string  `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Slug        string  `gorm:"type:varchar(160);not null;uniqueIndex" json:"slug"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	ParentID    *string `gorm:"type:varchar(36);index" json:"parent_id"`
	Position    int     `gorm:"not null;default:0" json:"position"`
	CreatedByID string  `gorm:"type:varchar(36)" json:"created_by_id,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

type Tag struct {
	Model
	Name        string `gorm:"type:varchar(80);not null" json:"name"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	CreatedByID string `gorm:"type:varchar(36)" json:"created_by_id,omitempty"`
}

type Series struct {
	Model
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	CreatedByID string `gorm:"type:varchar(36)" json:"created_by_id,omitempty"`
}

func (Series) TableName() string {
	return "series"
}

// Organization kinds.
const (
	OrganizationPublisher   = "publisher"
	OrganizationDistributor = "distributor"
	OrganizationOther       = "other"
)

type Organization struct {
	Model
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Kind        string    `gorm:"type:varchar(16);not null;default:publisher" json:"kind"`
	Website     string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	CreatedByID string    `gorm:"type:varchar(36)" json:"created_by_id,omitempty"`
	Contacts    []Contact `gorm:"foreignKey:OrganizationID" json:"contacts,omitempty"`
}

type Contact struct {
	Model
	OrganizationID string `gorm:"type:varchar(36);not null;index" json:"organization_id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Email          string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone          string `gorm:"type:varchar(40)" json:"phone,omitempty"`
	Role           string `gorm:"type:varchar(80)" json:"role,omitempty"`
}
