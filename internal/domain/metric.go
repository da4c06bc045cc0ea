package domain

import (
	"encoding/json"
	"math"
)

// Metric - числовое значение индикатора. Может быть не конечным
// (деление на ноль при нормализации на население).
type Metric float64

// NoMetric возвращается, когда индикатор не распознан
var NoMetric = Metric(math.NaN())

// IsFinite сообщает, является ли значение конечным числом
func (m Metric) IsFinite() bool {
	f := float64(m)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON кодирует NaN и ±Inf как null, encoding/json их не поддерживает
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}
