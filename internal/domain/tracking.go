package domain

import "strings"

// NormalizeTrackingCode приводит введённый пользователем код к виду, в котором он хранится
func NormalizeTrackingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
