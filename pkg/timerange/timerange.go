// Package timerange работает с временем суток слотов: разбор "HH:MM" / "HH:MM:SS",
// длительность в часах и проверка пересечений интервалов.
package timerange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строку нельзя разобрать как время суток
	ErrInvalidTimeFormat = errors.New("timerange: invalid time format")

	// ErrInvalidRange возвращается, когда конец слота не позже начала
	ErrInvalidRange = errors.New("timerange: end time must be after start time")
)

const day = 24 * time.Hour

// Parse разбирает время суток и возвращает смещение от полуночи.
// Допустимые форматы: HH:MM и HH:MM:SS (часы 00-23, минуты и секунды 00-59).
func Parse(value string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var offset time.Duration
	for i, part := range parts {
		if len(part) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
		}
		offset += time.Duration(n) * units[i]
	}

	return offset, nil
}

// Normalize приводит время к виду HH:MM (или HH:MM:SS, если секунды ненулевые)
func Normalize(value string) (string, error) {
	offset, err := Parse(value)
	if err != nil {
		return "", err
	}
	return Format(offset), nil
}

// Format форматирует смещение от полуночи в HH:MM или HH:MM:SS
func Format(offset time.Duration) string {
	offset = offset % day
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	s := int(offset % time.Minute / time.Second)
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// DurationHours возвращает длительность интервала в часах.
// Если конец не позже начала, интервал считается переходящим через полночь.
// Ошибка разбора всегда возвращается вызывающему, значение по умолчанию не подставляется.
func DurationHours(start, end string) (float64, error) {
	startOffset, err := Parse(start)
	if err != nil {
		return 0, err
	}
	endOffset, err := Parse(end)
	if err != nil {
		return 0, err
	}

	if endOffset <= startOffset {
		endOffset += day
	}

	return (endOffset - startOffset).Hours(), nil
}

// ValidateSlot проверяет интервал слота: конец строго позже начала, без перехода через полночь
func ValidateSlot(start, end string) error {
	startOffset, err := Parse(start)
	if err != nil {
		return err
	}
	endOffset, err := Parse(end)
	if err != nil {
		return err
	}

	if endOffset <= startOffset {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRange, start, end)
	}

	return nil
}

// Overlaps проверяет строгое пересечение интервалов [aStart, aEnd) и [bStart, bEnd).
// Интервалы, которые только соприкасаются границами, не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd string) (bool, error) {
	as, err := Parse(aStart)
	if err != nil {
		return false, err
	}
	ae, err := Parse(aEnd)
	if err != nil {
		return false, err
	}
	bs, err := Parse(bStart)
	if err != nil {
		return false, err
	}
	be, err := Parse(bEnd)
	if err != nil {
		return false, err
	}

	return as < be && bs < ae, nil
}
