package domain

// MaxItemNutrient caps each field of a single food item.
const MaxItemNutrient = 10000

// Nutrients is both a food item's macro payload and the per-day ledger.
type Nutrients struct {
	Calories float64
	Fat      float64
	Carbs    float64
	Protein  float64
	Sugars   float64
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Fat:      n.Fat + o.Fat,
		Carbs:    n.Carbs + o.Carbs,
		Protein:  n.Protein + o.Protein,
		Sugars:   n.Sugars + o.Sugars,
	}
}

// DailySummary is what the calorie counter shows for the current day.
type DailySummary struct {
	Day          Day
	CalorieLimit int
	Intake       Nutrients
	Remaining    float64
}
