package tracking

import (
	"fmt"
	"net/url"
	"strings"
)

// shareMessageTemplate is the text embedded in share messages and deep links.
const shareMessageTemplate = "Follow your delivery live here: %s"

// FormatShareMessage builds the message handed to the platform share sheet.
//
// With a recipient phone number, the number is stripped to digits and the
// country code is prepended unless already present, producing a WhatsApp
// deep link that opens a chat with the message prefilled. Without a phone
// number, the plain message text is returned for generic sharing.
func FormatShareMessage(shareURL, recipientPhone, countryCode string) string {
	message := fmt.Sprintf(shareMessageTemplate, shareURL)

	digits := stripToDigits(recipientPhone)
	if digits == "" {
		return message
	}

	digits = strings.TrimLeft(digits, "0")
	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}

func stripToDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
