package catalog

// Library is the root aggregate of the catalog: it owns departments and is
// removed logically, never physically.
type Library struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	IsDeleted bool   `gorm:"not null;default:false"`

	Departments []Department `gorm:"foreignKey:LibraryID"`
}

// TableName returns the table name for GORM
func (Library) TableName() string {
	return "libraries"
}

// MarkDeleted flags the library as logically deleted
func (l *Library) MarkDeleted() {
	l.IsDeleted = true
}
