package domain

import "time"

type ItemType string

const (
	ItemTypeRoom      ItemType = "room"
	ItemTypeEquipment ItemType = "equipment"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeRoom || t == ItemTypeEquipment
}

// Item описывает помещение или оборудование из каталога кампуса.
type Item struct {
	ID          string    `json:"id"`
	Type        ItemType  `json:"type"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
