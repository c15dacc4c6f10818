package service

import (
	"fmt"
	"strings"

	"github.com/floramar/flower-service/internal/domain/model"
)

const orderSeparator = "━━━━━━━━━━━━━━━━━━"

// OrderFormatter renders a cart into the order message handed to the
// dispatch channel.
type OrderFormatter interface {
	FormatOrder(cart model.Cart, details *model.CheckoutDetails) string
}

// MessageFormatter implements OrderFormatter. The output is deterministic:
// it depends only on the cart (in insertion order) and the checkout details,
// with every monetary value rendered to two decimals.
type MessageFormatter struct {
	countryPrefix string
}

// NewMessageFormatter creates a formatter using the given phone country
// prefix for the customer block (e.g. "+53").
func NewMessageFormatter(countryPrefix string) *MessageFormatter {
	return &MessageFormatter{countryPrefix: countryPrefix}
}

// FormatOrder produces the textual order summary: header, optional customer
// block, one numbered entry per cart line with its accessories and subtotal,
// a single TOTAL line equal to the cart total, and a closing line.
func (f *MessageFormatter) FormatOrder(cart model.Cart, details *model.CheckoutDetails) string {
	var b strings.Builder

	b.WriteString("🌸 *Nuevo Pedido de Flores* 🌸\n\n")

	if details != nil {
		b.WriteString("*Datos del Cliente:*\n")
		fmt.Fprintf(&b, "👤 Nombre: %s\n", details.Name)
		fmt.Fprintf(&b, "📍 Dirección: %s\n", details.Address)
		fmt.Fprintf(&b, "📱 Teléfono: %s %s\n\n", f.countryPrefix, details.Phone)
	}

	b.WriteString("*Productos:*\n\n")
	for i, line := range cart.Lines {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, line.Product.Name)
		fmt.Fprintf(&b, "   Cantidad: %d\n", line.Quantity)
		fmt.Fprintf(&b, "   Precio unitario: $%.2f\n", line.Product.Price)
		for _, sel := range line.Selections {
			fmt.Fprintf(&b, "   🎀 Accesorio: %s (x%d) (+$%.2f c/u)\n", sel.Accessory.Name, sel.Quantity, sel.Accessory.Price)
		}
		fmt.Fprintf(&b, "   Subtotal: $%.2f\n\n", line.Subtotal())
	}

	b.WriteString(orderSeparator + "\n")
	fmt.Fprintf(&b, "*TOTAL: $%.2f*\n\n", cart.TotalPrice())
	b.WriteString("Gracias por tu compra! 💐")

	return b.String()
}
