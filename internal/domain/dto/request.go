// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/floramar/flower-service/internal/domain/model"

// SelectionInput is one accessory selection in a request, referencing the
// accessory by catalog ID.
type SelectionInput struct {
	// AccessoryID references an accessory from the catalog
	AccessoryID string `json:"accessory_id" binding:"required" example:"peluche-oso"`
	// Quantity is how many of the accessory to attach
	Quantity int `json:"quantity" example:"1"`
}

// AddLineRequest is the body for adding a product to the cart.
//
// @Description Request to add one unit of a product with an optional accessory bundle
type AddLineRequest struct {
	// ProductID references a product from the catalog
	ProductID string `json:"product_id" binding:"required" example:"rosas-rojas"`
	// Selections is the optional accessory bundle
	Selections []SelectionInput `json:"selections,omitempty"`
} // @name AddLineRequest

// SetQuantityRequest is the body for setting a cart line quantity.
// A quantity of zero or below removes the line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" example:"2"`
} // @name SetQuantityRequest

// ResolveSelectionsRequest is the body for adjusting one accessory within a
// selection set, mirroring the +/- controls of the accessory picker.
type ResolveSelectionsRequest struct {
	// Current is the selection set being edited
	Current []SelectionInput `json:"current"`
	// AccessoryID is the accessory being adjusted
	AccessoryID string `json:"accessory_id" binding:"required" example:"peluche-oso"`
	// Delta is the quantity adjustment, typically +1 or -1
	Delta int `json:"delta" binding:"required" example:"1"`
} // @name ResolveSelectionsRequest

// CheckoutRequest is the body for dispatching the cart as an order.
type CheckoutRequest struct {
	// Name is the customer name
	Name string `json:"name" binding:"required" example:"María Pérez"`
	// Address is the delivery address
	Address string `json:"address" binding:"required" example:"Calle 23 #456, Vedado"`
	// Phone is the local phone number, exactly 8 digits
	Phone string `json:"phone" binding:"required" example:"51234567"`
} // @name CheckoutRequest

// Details converts the request into sanitized checkout details.
func (r CheckoutRequest) Details() model.CheckoutDetails {
	return model.CheckoutDetails{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}.Sanitize()
}
