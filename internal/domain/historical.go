package domain

import (
	"sort"
	"time"
)

// HistoricalDateLayout - формат ключей дат в исторических рядах ("3/1/22")
const HistoricalDateLayout = "1/2/06"

// DateSeries - накопленные значения по дате
type DateSeries map[string]int64

// Timeline - три ряда, ключи дат могут не совпадать
type Timeline struct {
	Cases     DateSeries `json:"cases"`
	Deaths    DateSeries `json:"deaths"`
	Recovered DateSeries `json:"recovered"`
}

// GlobalHistorical - мировые ряды из /historical/all
type GlobalHistorical struct {
	Timeline
}

// CountryHistorical - ряды по стране из /historical/{country}
type CountryHistorical struct {
	Country  string   `json:"country"`
	Province []string `json:"province"`
	Timeline Timeline `json:"timeline"`
}

// TimelinePoint - одна дата объединённого ряда. Пустой указатель означает,
// что для этой даты в соответствующем ряду нет значения.
type TimelinePoint struct {
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Cases     *int64    `json:"cases"`
	Deaths    *int64    `json:"deaths"`
	Recovered *int64    `json:"recovered"`
}

// Merge объединяет ключи всех трёх рядов и возвращает по одной точке
// на каждую дату в хронологическом порядке
func (t Timeline) Merge() []TimelinePoint {
	seen := make(map[string]time.Time, len(t.Cases))
	keys := make([]string, 0, len(t.Cases))
	for _, series := range []DateSeries{t.Cases, t.Deaths, t.Recovered} {
		for key := range series {
			if _, ok := seen[key]; ok {
				continue
			}
			ts, _ := ParseHistoricalDate(key)
			seen[key] = ts
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		ti, tj := seen[keys[i]], seen[keys[j]]
		if ti.Equal(tj) {
			return keys[i] < keys[j]
		}
		return ti.Before(tj)
	})

	points := make([]TimelinePoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, TimelinePoint{
			Date:      key,
			Timestamp: seen[key],
			Cases:     t.Cases.lookup(key),
			Deaths:    t.Deaths.lookup(key),
			Recovered: t.Recovered.lookup(key),
		})
	}
	return points
}

func (s DateSeries) lookup(key string) *int64 {
	v, ok := s[key]
	if !ok {
		return nil
	}
	return &v
}

// ParseHistoricalDate разбирает ключ вида "3/1/22" как дату в UTC
func ParseHistoricalDate(key string) (time.Time, error) {
	return time.Parse(HistoricalDateLayout, key)
}
