package generate

// Config holds generation settings per content kind.
type Config struct {
	LessonMaxTokens   int
	LessonTemperature float64
	QuizMaxTokens     int
	QuizTemperature   float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		LessonMaxTokens:   2000,
		LessonTemperature: 0.7,
		QuizMaxTokens:     1500,
		QuizTemperature:   0.5,
	}
}
