package domain

import (
	"fmt"
	"strings"
)

// Indicator - отслеживаемая метрика: случаи, смерти или выздоровления
type Indicator int

const (
	IndicatorCases Indicator = iota
	IndicatorDeaths
	IndicatorRecovered
)

const (
	minIndicator = IndicatorCases
	maxIndicator = IndicatorRecovered
)

var indicatorNames = [...]string{
	IndicatorCases:     "cases",
	IndicatorDeaths:    "death",
	IndicatorRecovered: "recovered",
}

// Indicators возвращает все индикаторы в порядке переключения
func Indicators() []Indicator {
	return []Indicator{IndicatorCases, IndicatorDeaths, IndicatorRecovered}
}

// ParseIndicator разбирает имя индикатора ("cases", "death", "recovered")
func ParseIndicator(name string) (Indicator, error) {
	for i, n := range indicatorNames {
		if n == name {
			return Indicator(i), nil
		}
	}
	return 0, fmt.Errorf("unknown indicator %q", name)
}

func (i Indicator) Valid() bool {
	return i >= minIndicator && i <= maxIndicator
}

// String возвращает имя индикатора
func (i Indicator) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Indicator(%d)", int(i))
	}
	return indicatorNames[i]
}

// Label - имя для отображения: первая буква заглавная, остальное без изменений
func (i Indicator) Label() string {
	name := i.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Advance сдвигает индикатор на direction позиций.
// Если результат выходит за границы, индикатор не меняется.
func (i Indicator) Advance(direction int) Indicator {
	next := i + Indicator(direction)
	if !next.Valid() {
		return i
	}
	return next
}

func (i Indicator) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("unknown indicator %d", int(i))
	}
	return []byte(i.String()), nil
}

func (i *Indicator) UnmarshalText(text []byte) error {
	parsed, err := ParseIndicator(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
