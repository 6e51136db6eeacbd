package shared

import "strconv"

// SelectListItem is a choosable option rendered from an entity.
// Selected is computed relative to a caller-supplied context id.
type SelectListItem struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// NewSelectListItem builds an item from a numeric identity and display text
func NewSelectListItem(id int64, text string, selected bool) SelectListItem {
	return SelectListItem{
		Value:    strconv.FormatInt(id, 10),
		Text:     text,
		Selected: selected,
	}
}
