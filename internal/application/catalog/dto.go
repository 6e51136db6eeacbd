package catalog

// MenuView is the projection of a menu
type MenuView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TagView is the projection of a tag
type TagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
