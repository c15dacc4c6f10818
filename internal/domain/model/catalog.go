// Package model defines the core domain entities for the flower service.
package model

// Category groups products for the storefront filter.
type Category struct {
	// ID is the category identifier
	ID string `json:"id" example:"bouquets"`
	// Name is the display name
	Name string `json:"name" example:"Ramos"`
	// Description is a short display description
	Description string `json:"description" example:"Ramos de flores frescas"`
}

// Product is a purchasable catalog item. Products are supplied by the
// catalog and never mutated by the cart; cart lines keep their own copy.
//
// @Description Purchasable catalog item
type Product struct {
	// ID is the catalog identifier
	ID string `json:"id" example:"rosas-rojas"`
	// Name is the display name
	Name string `json:"name" example:"Ramo de Rosas Rojas"`
	// Description is a short display description
	Description string `json:"description" example:"Doce rosas rojas"`
	// Price is the unit price
	Price float64 `json:"price" example:"1200"`
	// ImageURL references the product image
	ImageURL string `json:"image_url" example:"/images/rosas-rojas.webp"`
	// CategoryID references the product category
	CategoryID string `json:"category_id" example:"bouquets"`
}

// Accessory is an optional add-on that can be attached to a cart line.
//
// @Description Optional accessory attachable to a cart line
type Accessory struct {
	// ID is the catalog identifier
	ID string `json:"id" example:"peluche-oso"`
	// Name is the display name
	Name string `json:"name" example:"Peluche de Oso"`
	// Description is a short display description
	Description string `json:"description" example:"Peluche suave de 25cm"`
	// Price is the unit price
	Price float64 `json:"price" example:"350"`
	// ImageURL references the accessory image
	ImageURL string `json:"image_url" example:"/images/peluche.webp"`
}

// Catalog is the immutable set of products, accessories, and categories
// loaded at startup.
type Catalog struct {
	Categories  []Category  `json:"categories"`
	Products    []Product   `json:"products"`
	Accessories []Accessory `json:"accessories"`
}
