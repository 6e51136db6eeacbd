package catalog

// Menu owns zero or more menu items
type Menu struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`

	MenuItems []MenuItem `gorm:"foreignKey:MenuID"`
}

// TableName returns the table name for GORM
func (Menu) TableName() string {
	return "menus"
}

// OwnsItem reports whether the menu owns a menu item with the given id
func (m *Menu) OwnsItem(itemID int64) bool {
	for _, item := range m.MenuItems {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// MenuItem belongs to exactly one menu and may carry role grants
type MenuItem struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	MenuID int64  `gorm:"not null;index"`
	Name   string `gorm:"type:varchar(100);not null"`
	Link   string `gorm:"type:varchar(255)"`

	UserRoles []MenuItemRole `gorm:"foreignKey:MenuItemID"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuItemRole grants a role access to a menu item
type MenuItemRole struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	MenuItemID int64  `gorm:"not null;index"`
	RoleName   string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (MenuItemRole) TableName() string {
	return "menu_item_roles"
}
