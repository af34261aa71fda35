package console

import "strings"

func (s *Shell) workouts(args []string) error {
	if len(args) > 2 {
		return usageError("workouts [category [level]]")
	}
	var category, level string
	if len(args) > 0 {
		category = args[0]
	}
	if len(args) > 1 {
		level = args[1]
	}

	videos, err := s.Catalog.Workouts(category, level)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		s.println("No workouts found")
		return nil
	}
	for _, v := range videos {
		s.printf("%-8s %-12s %s\n", v.Category, v.Level, v.URL)
	}
	return nil
}

func (s *Shell) meals() {
	for _, r := range s.Catalog.Recipes() {
		s.println(strings.TrimSpace(r.Description))
		s.printf("  %s\n", r.URL)
	}
}
