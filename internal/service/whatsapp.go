package service

import (
	"net/url"
	"strings"
)

// BuildDispatchURL builds the WhatsApp click-to-chat link carrying the
// formatted order message. Opening the link is the caller's (the client's)
// side of the handoff; the service never contacts the channel itself, and
// nothing downstream of the link is observed.
func BuildDispatchURL(phone, message string) string {
	// wa.me expects percent-encoded text, not form encoding
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}
