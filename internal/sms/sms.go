package sms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ComposeURI строит intent-ссылку sms:<номер>?body=<текст>.
// Пробелы кодируются как %20: часть SMS-приложений не понимает '+' в body.
func ComposeURI(phone, body string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
	return fmt.Sprintf("sms:%s?body=%s", phone, encoded)
}

// VictimLinkBody - текст SMS от диспетчера пострадавшему со ссылкой на маяк
func VictimLinkBody(victimURL string) string {
	return fmt.Sprintf("EMERGENCY: open this link to share your location: %s", victimURL)
}

// SOSBody - текст SMS-фолбэка от пострадавшего на номер экстренной службы.
// Формат разбирается декодером на стороне диспетчера, менять с осторожностью.
func SOSBody(lat, lng, accuracy float64, requestID uuid.UUID) string {
	return fmt.Sprintf("SOS %s,%s (±%sm) ID:%s",
		formatCoord(lat),
		formatCoord(lng),
		formatCoord(accuracy),
		requestID.String(),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
