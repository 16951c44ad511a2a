// Package allocation распределяет часы рабочего дня между активностями.
//
// Allocate используется при сохранении записи и определяет хранимые данные.
// Even только предлагает разбивку пользователю и ничего не сохраняет.
package allocation

import (
	"errors"
	"fmt"
	"math"
)

// Step минимальный шаг распределения в часах
const Step = 0.5

var (
	ErrNegativeBudget   = errors.New("allocation: hour budget must be a non-negative number")
	ErrNegativeDuration = errors.New("allocation: activity duration must be a non-negative number")
	ErrGranularity      = errors.New("allocation: activity duration must be a multiple of 0.5h")
)

// Activity входная активность. Duration == nil значит "время не указано".
type Activity struct {
	Description string
	Duration    *float64
}

// Allocated активность с итоговой длительностью
type Allocated struct {
	Description string
	Duration    float64
}

// Hours удобный конструктор для указателя на длительность
func Hours(h float64) *float64 {
	return &h
}

// Allocate распределяет остаток бюджета дня между активностями без времени.
//
// Активности с указанным временем (включая 0) идут первыми в исходном порядке,
// за ними активности без времени, тоже в исходном порядке.
// Каждая активность без времени получает минимум 0.5ч, поэтому при маленьком
// остатке сумма может превысить бюджет.
func Allocate(totalHours float64, activities []Activity) ([]Allocated, error) {
	if math.IsNaN(totalHours) || totalHours < 0 {
		return nil, ErrNegativeBudget
	}

	var withTime, withoutTime []Activity
	usedHours := 0.0
	for _, a := range activities {
		if a.Duration == nil {
			withoutTime = append(withoutTime, a)
			continue
		}
		d := *a.Duration
		if math.IsNaN(d) || d < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNegativeDuration, a.Description)
		}
		if !isStep(d) {
			return nil, fmt.Errorf("%w: %q has %vh", ErrGranularity, a.Description, d)
		}
		withTime = append(withTime, a)
		usedHours += d
	}

	remainingHours := math.Max(0, totalHours-usedHours)
	durations := distribute(remainingHours, len(withoutTime))

	result := make([]Allocated, 0, len(activities))
	for _, a := range withTime {
		result = append(result, Allocated{Description: a.Description, Duration: *a.Duration})
	}
	for i, a := range withoutTime {
		result = append(result, Allocated{Description: a.Description, Duration: durations[i]})
	}
	return result, nil
}

// distribute делит remaining на n частей с округлением вниз до 0.5ч,
// остаток раздается по 0.5ч первым активностям.
func distribute(remaining float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 || remaining == 0 {
		return out
	}

	baseHours := math.Floor(remaining/float64(n)*2) / 2
	if baseHours < Step {
		baseHours = Step
	}

	distributedHours := baseHours * float64(n)
	leftoverHours := math.Max(0, remaining-distributedHours)
	extraSlots := int(math.Floor(leftoverHours / Step))

	for i := range out {
		out[i] = baseHours
		if i < extraSlots {
			out[i] += Step
		}
	}
	return out
}

// Sum сумма длительностей
func Sum(items []Allocated) float64 {
	total := 0.0
	for _, a := range items {
		total += a.Duration
	}
	return total
}

func isStep(h float64) bool {
	return math.Mod(h*2, 1) == 0
}
