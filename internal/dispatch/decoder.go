package dispatch

import (
	"errors"
	"regexp"
	"strconv"
)

// Ошибки разбора координат из произвольного текста SMS
var (
	ErrNoCoordinates      = errors.New("no coordinate pair found in text")
	ErrCoordinatesInvalid = errors.New("coordinate pair out of range")
)

// Пара десятичных чисел со знаком, разделенных запятой. DMS-формат и
// локальные разделители дробной части не поддерживаются.
var coordPairRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)`)

// DecodeCoordinates извлекает пару (lat, lng) из свободного текста,
// например вставленного диспетчером SMS "SOS -4.22,15.29 ...".
// Берется первое совпадение; широта и долгота проверяются на диапазон.
func DecodeCoordinates(text string) (lat, lng float64, err error) {
	match := coordPairRe.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, ErrNoCoordinates
	}

	lat, err = strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, 0, ErrNoCoordinates
	}
	lng, err = strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, 0, ErrNoCoordinates
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, ErrCoordinatesInvalid
	}

	return lat, lng, nil
}
