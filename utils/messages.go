// utils/messages.go
package utils

import "strings"

// Personalize resolves the {name} and {sender} placeholders in a message
// template. Unknown placeholders are left as typed.
func Personalize(content, name, sender string) string {
	message := strings.ReplaceAll(content, "{name}", name)
	return strings.ReplaceAll(message, "{sender}", sender)
}
