package passage

import "github.com/verte-zerg/typist/internal/model"

var defaultPassages = []model.Passage{
	{Title: "Pangram", Text: "The quick brown fox jumps over the lazy dog."},
	{Title: "Practice", Text: "Practice makes perfect. Keep your eyes on the text and let your fingers find the keys."},
	{Title: "Rivers", Text: "A river cuts through rock not because of its power but because of its persistence."},
	{Title: "Terminal", Text: "Small programs that do one thing well can be combined to solve problems nobody planned for."},
	{Title: "Weather", Text: "The morning fog lifted slowly, revealing a pale sun over the quiet harbor."},
}

// Defaults returns the built-in passage set.
func Defaults() *Set {
	set, err := NewSet(defaultPassages)
	if err != nil {
		panic(err)
	}
	return set
}
