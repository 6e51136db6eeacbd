package catalog

// Tag is an independent label attached to catalog materials
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Tag) TableName() string {
	return "tags"
}
