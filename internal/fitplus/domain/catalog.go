package domain

import "strings"

// FoodItem is one entry of the built-in food catalog. Values are per the
// serving named in Name.
type FoodItem struct {
	Name string
	Nutrients
}

var foodCatalog = []FoodItem{
	{Name: "Egg", Nutrients: Nutrients{Calories: 155, Fat: 11, Carbs: 1.1, Protein: 13, Sugars: 1.1}},
	{Name: "Milk (1 cup)", Nutrients: Nutrients{Calories: 103, Fat: 2.4, Carbs: 12, Protein: 8, Sugars: 12}},
	{Name: "Banana", Nutrients: Nutrients{Calories: 89, Fat: 0.3, Carbs: 23, Protein: 1.1, Sugars: 12}},
	{Name: "Chicken Breast (100g)", Nutrients: Nutrients{Calories: 165, Fat: 3.6, Carbs: 0, Protein: 31, Sugars: 0}},
	{Name: "Apple", Nutrients: Nutrients{Calories: 52, Fat: 0.2, Carbs: 14, Protein: 0.3, Sugars: 10}},
	{Name: "Almonds (1 ounce)", Nutrients: Nutrients{Calories: 579, Fat: 49.9, Carbs: 21.6, Protein: 21.2, Sugars: 3.9}},
	{Name: "Broccoli (1 cup)", Nutrients: Nutrients{Calories: 34, Fat: 0.4, Carbs: 6.6, Protein: 2.8, Sugars: 1.7}},
	{Name: "Salmon (100g)", Nutrients: Nutrients{Calories: 208, Fat: 13, Carbs: 0, Protein: 20, Sugars: 0}},
	{Name: "Sweet Potato", Nutrients: Nutrients{Calories: 86, Fat: 0.1, Carbs: 20, Protein: 1.6, Sugars: 4.2}},
	{Name: "Oats (1 cup)", Nutrients: Nutrients{Calories: 389, Fat: 6.9, Carbs: 66, Protein: 17, Sugars: 0}},
	{Name: "White Rice (1 cup)", Nutrients: Nutrients{Calories: 130, Fat: 0.3, Carbs: 28, Protein: 2.7, Sugars: 0.1}},
	{Name: "Whole Wheat Bread (1 slice)", Nutrients: Nutrients{Calories: 247, Fat: 4.4, Carbs: 41, Protein: 13, Sugars: 6}},
	{Name: "Avocado", Nutrients: Nutrients{Calories: 160, Fat: 15, Carbs: 9, Protein: 2, Sugars: 0.7}},
	{Name: "Greek Yogurt (100g)", Nutrients: Nutrients{Calories: 59, Fat: 0.4, Carbs: 3.6, Protein: 10, Sugars: 3.2}},
	{Name: "Spinach (1 cup)", Nutrients: Nutrients{Calories: 23, Fat: 0.4, Carbs: 3.6, Protein: 2.9, Sugars: 0.4}},
	{Name: "Tomato", Nutrients: Nutrients{Calories: 18, Fat: 0.2, Carbs: 3.9, Protein: 0.9, Sugars: 2.6}},
	{Name: "Beef (100g)", Nutrients: Nutrients{Calories: 254, Fat: 20, Carbs: 0, Protein: 17.2, Sugars: 0}},
	{Name: "Peanut Butter (2 tablespoons)", Nutrients: Nutrients{Calories: 588, Fat: 50, Carbs: 20, Protein: 25, Sugars: 9}},
	{Name: "Quinoa (1 cup)", Nutrients: Nutrients{Calories: 120, Fat: 1.9, Carbs: 21, Protein: 4.1, Sugars: 0.9}},
	{Name: "Lentils (1 cup)", Nutrients: Nutrients{Calories: 116, Fat: 0.4, Carbs: 20, Protein: 9, Sugars: 1.8}},
	{Name: "Cucumber", Nutrients: Nutrients{Calories: 16, Fat: 0.1, Carbs: 3.6, Protein: 0.7, Sugars: 1.7}},
	{Name: "Cheddar Cheese (1 ounce)", Nutrients: Nutrients{Calories: 402, Fat: 33, Carbs: 1.3, Protein: 25, Sugars: 0.5}},
	{Name: "Whole Wheat Pasta (1 cup)", Nutrients: Nutrients{Calories: 124, Fat: 0.8, Carbs: 26, Protein: 5, Sugars: 1.3}},
	{Name: "Orange", Nutrients: Nutrients{Calories: 47, Fat: 0.1, Carbs: 12, Protein: 0.9, Sugars: 9}},
	{Name: "Tofu (100g)", Nutrients: Nutrients{Calories: 76, Fat: 4.8, Carbs: 1.9, Protein: 8, Sugars: 0.3}},
}

// WorkoutVideo links a workout routine video.
type WorkoutVideo struct {
	Category string
	Level    string
	URL      string
}

var (
	WorkoutCategories = []string{"Cardio", "Strength", "Yoga", "HIIT"}
	WorkoutLevels     = []string{"Beginner", "Intermediate", "Advanced"}
)

var workoutCatalog = []WorkoutVideo{
	{Category: "Cardio", Level: "Beginner", URL: "https://www.youtube.com/watch?v=gX9SOYbfxeM"},
	{Category: "Cardio", Level: "Beginner", URL: "https://www.youtube.com/watch?v=PqqJBaE4srs"},
	{Category: "Cardio", Level: "Beginner", URL: "https://www.youtube.com/watch?v=_JUJ9647NbI"},
	{Category: "Cardio", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=wLYeRlyyncY"},
	{Category: "Cardio", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=9lVBk1gS6qc"},
	{Category: "Cardio", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=ZgPWjI-FG24"},
	{Category: "Cardio", Level: "Advanced", URL: "https://www.youtube.com/watch?v=LE67JPeJsUQ"},
	{Category: "Cardio", Level: "Advanced", URL: "https://www.youtube.com/watch?v=kZDvg92tTMc"},
	{Category: "Cardio", Level: "Advanced", URL: "https://www.youtube.com/watch?v=HzfHKN6rmpk"},
	{Category: "Strength", Level: "Beginner", URL: "https://www.youtube.com/watch?v=tj0o8aH9vJw"},
	{Category: "Strength", Level: "Beginner", URL: "https://www.youtube.com/watch?v=eMjyvIQbn9M"},
	{Category: "Strength", Level: "Beginner", URL: "https://www.youtube.com/watch?v=Vxtr50cbX6c"},
	{Category: "Strength", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=XxuRSjER3Qk"},
	{Category: "Strength", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=0hYDDsRjwks"},
	{Category: "Strength", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=9FBIaqr7TjQ"},
	{Category: "Strength", Level: "Advanced", URL: "https://www.youtube.com/watch?v=588-C4bEL28"},
	{Category: "Strength", Level: "Advanced", URL: "https://www.youtube.com/watch?v=pHesd3IMTNI"},
	{Category: "Strength", Level: "Advanced", URL: "https://www.youtube.com/watch?v=IEyXbt_ZbF4"},
	{Category: "Yoga", Level: "Beginner", URL: "https://www.youtube.com/watch?v=v7AYKMP6rOE"},
	{Category: "Yoga", Level: "Beginner", URL: "https://www.youtube.com/watch?v=-wArTthypOo"},
	{Category: "Yoga", Level: "Beginner", URL: "https://www.youtube.com/watch?v=VzY6XuOSoHw"},
	{Category: "Yoga", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=52GAcwujm0k"},
	{Category: "Yoga", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=vkZ-hRCpC-4"},
	{Category: "Yoga", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=ZbtVVYBLCug"},
	{Category: "Yoga", Level: "Advanced", URL: "https://www.youtube.com/watch?v=OHNNfNHxapc"},
	{Category: "Yoga", Level: "Advanced", URL: "https://www.youtube.com/watch?v=JaCW9K_L_-8"},
	{Category: "Yoga", Level: "Advanced", URL: "https://www.youtube.com/watch?v=f7_zx1sPBj0"},
	{Category: "HIIT", Level: "Beginner", URL: "https://www.youtube.com/watch?v=cbKkB3POqaY"},
	{Category: "HIIT", Level: "Beginner", URL: "https://www.youtube.com/watch?v=jWCm9piAwAU"},
	{Category: "HIIT", Level: "Beginner", URL: "https://www.youtube.com/watch?v=ebfBv6h3UFM"},
	{Category: "HIIT", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=H8vrfohV5e4"},
	{Category: "HIIT", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=M5BhuRQ_FGk"},
	{Category: "HIIT", Level: "Intermediate", URL: "https://www.youtube.com/watch?v=M0uO8X3_tEA"},
	{Category: "HIIT", Level: "Advanced", URL: "https://www.youtube.com/watch?v=Amj0PAfhGIk"},
	{Category: "HIIT", Level: "Advanced", URL: "https://www.youtube.com/watch?v=WNUvx5y-1QE"},
	{Category: "HIIT", Level: "Advanced", URL: "https://www.youtube.com/watch?v=4nPKyvKmFi0"},
}

// Recipe is a suggested meal with a link to its method.
type Recipe struct {
	URL         string
	Description string
}

var recipeCatalog = []Recipe{
	{
		URL:         "https://www.bbcgoodfood.com/recipes/chicken-satay-salad",
		Description: "Try this no-fuss, midweek meal that's high in protein and big on flavour. Marinate chicken breasts, then drizzle with a punchy peanut satay sauce",
	},
	{
		URL:         "https://www.bbcgoodfood.com/recipes/double-bean-roasted-pepper-chilli",
		Description: "This warming vegetarian chilli is a low-fat, healthy option that packs in the veggies and flavour. Serve with Tabasco sauce, soured cream or yoghurt.",
	},
	{
		URL:         "https://www.bbcgoodfood.com/recipes/chicken-noodle-soup",
		Description: "Mary Cadogan's aromatic broth will warm you up on a winter's evening - it contains ginger, which is particularly good for colds.",
	},
	{
		URL:         "https://www.bbcgoodfood.com/recipes/classic-waffles",
		Description: "Make savoury or sweet waffles using this all-in-one batter mix. For even lighter waffles, whisk the egg white until fluffy, then fold through the batter",
	},
	{
		URL:         "https://www.bbcgoodfood.com/recipes/oat-biscuits-0",
		Description: "Nothing beats homemade cookies - make these easy oat biscuits for a sweet treat during the day when you need a break. They're perfect served with a cuppa",
	},
	{
		URL:         "https://www.bbcgoodfood.com/recipes/protein-balls",
		Description: "Make tasty protein balls using oats, protein powder, flaxseed and cinnamon to enjoy post-exercise and replenish your protein",
	},
	{
		URL:         "https://www.bbcgoodfood.com/recipes/creamy-salmon-pasta",
		Description: "Indulge in this creamy salmon dish for two. It's comforting and filling, and ready in just 30 minutes. Serve with a green salad",
	},
}

// FoodCatalog returns a copy of the built-in food items.
func FoodCatalog() []FoodItem {
	return append([]FoodItem(nil), foodCatalog...)
}

// LookupFood finds a catalog item by name, ignoring case and surrounding space.
func LookupFood(name string) (FoodItem, bool) {
	name = strings.TrimSpace(name)
	for _, item := range foodCatalog {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return FoodItem{}, false
}

// Workouts returns the videos for a category and level. Empty filters match
// everything.
func Workouts(category, level string) []WorkoutVideo {
	var out []WorkoutVideo
	for _, v := range workoutCatalog {
		if category != "" && !strings.EqualFold(v.Category, category) {
			continue
		}
		if level != "" && !strings.EqualFold(v.Level, level) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func Recipes() []Recipe {
	return append([]Recipe(nil), recipeCatalog...)
}
