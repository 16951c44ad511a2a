package allocation

import "math"

// Even делит totalHours на count равных частей, округляя до ближайших 0.5ч,
// затем подправляет отдельные части на ±0.5ч, пока сумма не совпадет с totalHours.
// Добавление предпочтительнее вычитания, ни одна часть не уходит ниже нуля.
// Если totalHours не кратно 0.5, сумма останавливается на ближайшем меньшем значении.
func Even(totalHours float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if math.IsNaN(totalHours) || totalHours < 0 {
		totalHours = 0
	}

	base := math.Round(totalHours/float64(count)*2) / 2
	slots := make([]float64, count)
	for i := range slots {
		slots[i] = base
	}

	diff := totalHours - base*float64(count)
	for i := 0; diff >= Step; i = (i + 1) % count {
		slots[i] += Step
		diff -= Step
	}
	for i := count - 1; diff < 0; i-- {
		if i < 0 {
			i = count - 1
		}
		if slots[i] >= Step {
			slots[i] -= Step
			diff += Step
		}
	}
	return slots
}
