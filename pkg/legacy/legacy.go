// Package legacy разбирает старый формат записей, где активности дня
// хранились одной JSON строкой в колонке entries.activity.
package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNotArray JSON валиден, но это не массив активностей
var ErrNotArray = errors.New("legacy: activity payload is not a JSON array")

// ActivityJSON элемент старого массива. Поле order из старых записей
// не читается: порядок задает позиция в массиве.
type ActivityJSON struct {
	Description string   `json:"description"`
	Duration    *float64 `json:"duration"`
}

// Activity нормализованная активность: описание без пробелов по краям,
// длительность не меньше нуля, порядок 0..n-1 по позиции в массиве.
type Activity struct {
	Description string
	Duration    float64
	Order       int
}

// DecodeActivities разбирает строку из колонки activity.
// Пустая строка - нет активностей и нет ошибки.
func DecodeActivities(raw string) ([]Activity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !strings.HasPrefix(raw, "[") {
		if json.Valid([]byte(raw)) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("failed to unmarshal legacy activities: invalid JSON")
	}

	var items []ActivityJSON
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal legacy activities: %w", err)
	}

	activities := make([]Activity, 0, len(items))
	for _, item := range items {
		description := strings.TrimSpace(item.Description)
		if description == "" {
			continue
		}

		duration := 0.0
		if item.Duration != nil && !math.IsNaN(*item.Duration) && *item.Duration > 0 {
			duration = *item.Duration
		}

		activities = append(activities, Activity{
			Description: description,
			Duration:    duration,
			Order:       len(activities),
		})
	}

	return activities, nil
}
