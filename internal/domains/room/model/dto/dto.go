package dto

import (
	"fmt"

	"staysync/internal/domains/room/model"
)

type RoomTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available int    `json:"available"`
	Label     string `json:"label"`
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Available = model.Available
	r.Label = Label(model)
}

// Label is the text shown for a room type in the booking form selector.
func Label(roomType model.RoomType) string {
	return fmt.Sprintf("%s - $%d/night (%d available)", roomType.Name, roomType.Price, roomType.Available)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models model.Catalog) {
	r.TotalData = len(models)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
