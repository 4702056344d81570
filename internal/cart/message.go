package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/restaurantelilica/cardapio-backend/internal/siteconfig"
)

// EmptyCartGreeting replaces the order summary when no lines exist.
const EmptyCartGreeting = "Olá, gostaria de fazer um pedido!"

const whatsAppBase = "https://wa.me/"

// BuildWhatsAppMessage renders the order summary sent to the restaurant:
// a header with the restaurant name, one numbered line per cart line and a
// total. An empty cart yields a generic greeting instead.
func BuildWhatsAppMessage(s State, restaurantName string) string {
	if restaurantName == "" {
		restaurantName = "Restaurante"
	}
	if len(s.Lines) == 0 {
		return EmptyCartGreeting
	}

	parts := []string{fmt.Sprintf("*%s - Pedido*", restaurantName)}
	for i, line := range s.Lines {
		subtotal := line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		parts = append(parts, fmt.Sprintf("%d. %s x%d — %s", i+1, line.Item.Name, line.Quantity, FormatBRL(subtotal)))
	}
	parts = append(parts, "Total: "+FormatBRL(s.Total()))

	return strings.Join(parts, "\n")
}

// BuildWhatsAppLink encodes the order message into a wa.me deep link for
// the configured number. Without digits the bare base link is used.
func BuildWhatsAppLink(s State, restaurantName, whatsappNumber string) string {
	base := whatsAppBase
	if digits := siteconfig.DigitsOnly(whatsappNumber); digits != "" {
		base += digits
	}
	return base + "?text=" + url.QueryEscape(BuildWhatsAppMessage(s, restaurantName))
}

// FormatBRL renders a decimal as Brazilian currency: "R$ 1.234,56".
func FormatBRL(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return "R$ " + sign + grouped.String() + "," + fracPart
}
