package dispatch

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Задержка перед переходом на geo: URI в комбинированном запуске.
// Меньше 500мс нельзя: переход со страницы может опередить открытие новой вкладки.
const geoLaunchDelay = 800 * time.Millisecond

// MapAction - один шаг плана открытия карты: URI и задержка перед его выполнением
type MapAction struct {
	URI   string        `json:"uri"`
	Delay time.Duration `json:"delay"`
}

// WebMapsURL возвращает ссылку поиска в веб-картах для пары координат
func WebMapsURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s",
		formatCoord(lat), formatCoord(lng))
}

// GeoURI возвращает нативный geo: URI для передачи в офлайн-картографическое приложение
func GeoURI(lat, lng float64, label string) string {
	la, ln := formatCoord(lat), formatCoord(lng)
	return fmt.Sprintf("geo:%s,%s?q=%s,%s(%s)", la, ln, la, ln, url.QueryEscape(label))
}

// LaunchWeb - план запуска только веб-карт
func LaunchWeb(lat, lng float64) []MapAction {
	return []MapAction{{URI: WebMapsURL(lat, lng)}}
}

// LaunchNative - план запуска только нативного geo: URI
func LaunchNative(lat, lng float64, label string) []MapAction {
	return []MapAction{{URI: GeoURI(lat, lng, label)}}
}

// LaunchBoth - комбинированный план: сначала веб-карты, затем geo: URI с задержкой
func LaunchBoth(lat, lng float64, label string) []MapAction {
	return []MapAction{
		{URI: WebMapsURL(lat, lng)},
		{URI: GeoURI(lat, lng, label), Delay: geoLaunchDelay},
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
