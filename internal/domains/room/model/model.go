package model

const (
	EntityName = "room type"

	FieldID        = "id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldAvailable = "available"
)

// RoomType is a category of hotel room with a fixed nightly price.
type RoomType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available int    `json:"available"`
}

// Catalog is the ordered list of room types offered by the hotel.
type Catalog []RoomType

// Has reports whether id is the code of a room type in the catalog.
func (c Catalog) Has(id string) bool {
	_, ok := c.Find(id)

	return ok
}

func (c Catalog) Find(id string) (RoomType, bool) {
	for _, roomType := range c {
		if roomType.ID == id {
			return roomType, true
		}
	}

	return RoomType{}, false
}
