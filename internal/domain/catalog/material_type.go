package catalog

// MaterialType classifies catalog materials. Independent aggregate, no parent.
type MaterialType struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (MaterialType) TableName() string {
	return "material_types"
}
