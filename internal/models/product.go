package models

import "time"

// SellingPlace is the sales channel a product is offered through.
type SellingPlace string

const (
	SellingPlaceEvent SellingPlace = "event"
	SellingPlaceStore SellingPlace = "store"
)

// Product represents a catalog product as stored in the database.
// ID and InsertedAt are assigned by the repository on create and are
// never written again afterwards.
type Product struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string       `json:"name" gorm:"type:varchar(150);not null;index"`
	EAN          string       `json:"ean" gorm:"column:ean;type:varchar(13);not null"`
	Description  string       `json:"description" gorm:"type:varchar(250)"`
	Price        float64      `json:"price" gorm:"not null"`
	Active       bool         `json:"active" gorm:"not null"`
	SellingPlace SellingPlace `json:"selling_place" gorm:"type:varchar(10);not null"`
	Picture      []byte       `json:"picture,omitempty"`
	InsertedAt   time.Time    `json:"inserted_at" gorm:"not null"`
}

// CreateProductInput is the request body for creating a product.
// Active is a pointer so that a missing field can be told apart from an
// explicit false and rejected by the required tag.
type CreateProductInput struct {
	Name         string       `json:"name" validate:"required,max=150"`
	EAN          string       `json:"ean" validate:"required,len=13,numeric"`
	Price        float64      `json:"price" validate:"required,gt=0"`
	Description  string       `json:"description" validate:"required,max=250"`
	Active       *bool        `json:"active" validate:"required"`
	SellingPlace SellingPlace `json:"selling_place" validate:"required,oneof=event store"`
	Picture      []byte       `json:"picture,omitempty"`
}

// ToProduct builds a transient Product entity from the input. The entity
// carries no ID and no timestamp until the repository persists it.
func (in *CreateProductInput) ToProduct() *Product {
	return &Product{
		Name:         in.Name,
		EAN:          in.EAN,
		Price:        in.Price,
		Description:  in.Description,
		Active:       *in.Active,
		SellingPlace: in.SellingPlace,
		Picture:      in.Picture,
	}
}
