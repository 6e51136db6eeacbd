package catalog

// Department belongs to exactly one library. The library reference is enforced
// by the storage-level foreign key; services do not re-validate it on insert.
type Department struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	LibraryID int64  `gorm:"not null;index"`

	Library *Library `gorm:"foreignKey:LibraryID"`
}

// TableName returns the table name for GORM
func (Department) TableName() string {
	return "departments"
}
