package lesson

import "github.com/abhisek/skillbyte/internal/model"

// seedLessons is the built-in lesson catalog, ordered by topic then
// progression. Order here is the catalog order ListTodays preserves.
var seedLessons = []model.Lesson{
	{
		ID:      "js-variables",
		TopicID: "js-foundations",
		Title:   "Variables and Values",
		Content: "JavaScript stores data in variables declared with let and const. " +
			"Use const by default and reach for let only when a binding must change. " +
			"Every value has a type — string, number, boolean, object — even though variables themselves are untyped.",
		Duration:  "3 min",
		KeyPoints: []string{"const by default", "let for reassignment", "values are typed, variables are not"},
	},
	{
		ID:      "js-functions",
		TopicID: "js-foundations",
		Title:   "Functions First",
		Content: "Functions are values in JavaScript: they can be assigned, passed, and returned. " +
			"Arrow functions give you a compact syntax and inherit this from their surroundings. " +
			"Prefer small, single-purpose functions that take inputs and return outputs without side effects.",
		Duration:  "4 min",
		KeyPoints: []string{"functions are values", "arrow functions inherit this", "keep functions small and pure"},
	},
	{
		ID:      "js-arrays",
		TopicID: "js-foundations",
		Title:   "Working with Arrays",
		Content: "map, filter, and reduce cover most everyday array work without writing index loops. " +
			"map transforms each element, filter keeps the ones you want, and reduce folds the array into a single result. " +
			"All three return new arrays or values and leave the original untouched.",
		Duration:  "4 min",
		KeyPoints: []string{"map transforms", "filter selects", "reduce folds", "originals stay unchanged"},
	},
	{
		ID:      "py-syntax",
		TopicID: "python-essentials",
		Title:   "Reading Python",
		Content: "Python uses indentation instead of braces, so the visual shape of the code is the structure. " +
			"Blocks start with a colon and everything indented beneath it belongs to that block. " +
			"Four spaces per level is the convention the whole ecosystem follows.",
		Duration:  "3 min",
		KeyPoints: []string{"indentation is structure", "colons open blocks", "four spaces per level"},
	},
	{
		ID:      "py-collections",
		TopicID: "python-essentials",
		Title:   "Lists and Dicts",
		Content: "Lists hold ordered sequences and dicts map keys to values; together they cover most data-shaping needs. " +
			"Comprehensions build new collections from old ones in a single readable line. " +
			"Reach for a dict whenever you find yourself searching a list by some property.",
		Duration:  "4 min",
		KeyPoints: []string{"lists are ordered", "dicts map keys to values", "comprehensions build collections"},
	},
	{
		ID:      "py-functions",
		TopicID: "python-essentials",
		Title:   "Defining Functions",
		Content: "def introduces a function; parameters can have defaults and callers can pass them by name. " +
			"Return early for error cases so the happy path reads straight down the page. " +
			"Docstrings on public functions tell the next reader what the function promises.",
		Duration:  "3 min",
		KeyPoints: []string{"defaults and keyword arguments", "return early", "docstrings state the contract"},
	},
	{
		ID:      "design-hierarchy",
		TopicID: "ui-design",
		Title:   "Visual Hierarchy",
		Content: "Users scan before they read, so size, weight, and contrast must rank information for them. " +
			"One primary action per screen; everything else steps back in weight. " +
			"If everything is bold, nothing is.",
		Duration:  "3 min",
		KeyPoints: []string{"rank information visually", "one primary action", "contrast draws the eye"},
	},
	{
		ID:      "design-spacing",
		TopicID: "ui-design",
		Title:   "Spacing and Rhythm",
		Content: "Consistent spacing makes interfaces feel deliberate. " +
			"Pick a base unit and use multiples of it for every margin and gap. " +
			"Group related elements tightly and separate unrelated ones generously — proximity is meaning.",
		Duration:  "3 min",
		KeyPoints: []string{"use a spacing scale", "proximity implies relation", "whitespace is a tool"},
	},
	{
		ID:      "data-mean-median",
		TopicID: "data-literacy",
		Title:   "Mean vs Median",
		Content: "The mean averages every value; the median is the middle value when sorted. " +
			"A handful of outliers can drag the mean far from what is typical, while the median barely moves. " +
			"When someone quotes an average, ask which one and what the distribution looks like.",
		Duration:  "3 min",
		KeyPoints: []string{"mean is outlier-sensitive", "median resists outliers", "always ask which average"},
	},
	{
		ID:      "data-sampling",
		TopicID: "data-literacy",
		Title:   "Sampling Bias",
		Content: "A sample only tells you about the population it was drawn from. " +
			"Surveying volunteers, or whoever is easiest to reach, bakes bias into the result before any math happens. " +
			"Before trusting a statistic, ask who was measured and who was left out.",
		Duration:  "4 min",
		KeyPoints: []string{"samples must represent", "convenience samples mislead", "ask who was excluded"},
	},
	{
		ID:      "data-correlation",
		TopicID: "data-literacy",
		Title:   "Correlation Is Not Causation",
		Content: "Two measures moving together does not mean one drives the other. " +
			"A hidden third factor can move both, or the direction of cause may run the other way. " +
			"Establishing causation needs controlled comparison, not just co-movement.",
		Duration:  "3 min",
		KeyPoints: []string{"co-movement is not cause", "watch for confounders", "controls establish causation"},
	},
	{
		ID:      "focus-deep-work",
		TopicID: "focus-habits",
		Title:   "Blocks of Deep Work",
		Content: "Attention takes minutes to settle, so fragmenting the day destroys its most valuable hours. " +
			"Reserve an uninterrupted block for the hardest task and treat it as an appointment. " +
			"Ninety focused minutes routinely beats a scattered afternoon.",
		Duration:  "3 min",
		KeyPoints: []string{"attention needs runway", "schedule deep blocks", "protect the block"},
	},
	{
		ID:      "focus-batching",
		TopicID: "focus-habits",
		Title:   "Batching Shallow Work",
		Content: "Email, messages, and small chores cost less when handled in dedicated batches. " +
			"Pick two or three fixed times a day for the shallow queue and let it accumulate in between. " +
			"The point is not doing less of it — it is paying the context-switch tax once instead of fifty times.",
		Duration:  "3 min",
		KeyPoints: []string{"batch the shallow queue", "fixed processing times", "context switches are the cost"},
	},
	{
		ID:      "speak-structure",
		TopicID: "public-speaking",
		Title:   "Structure Before Slides",
		Content: "An audience can only follow a talk that knows where it is going. " +
			"Lead with the one thing you want remembered, support it with three points, and close by returning to it. " +
			"Slides come last; they illustrate the structure, they are not the structure.",
		Duration:  "4 min",
		KeyPoints: []string{"one memorable message", "three supporting points", "slides illustrate, not carry"},
	},
	{
		ID:      "speak-delivery",
		TopicID: "public-speaking",
		Title:   "Pace and Pauses",
		Content: "Nerves speed speakers up just when the audience needs time to absorb. " +
			"A deliberate pause after a key point is not dead air — it is the audience catching up. " +
			"Record yourself once; the playback teaches more than any checklist.",
		Duration:  "3 min",
		KeyPoints: []string{"slow down under nerves", "pause after key points", "record and listen back"},
	},
}

// SeedLessons returns a copy of the built-in lessons.
func SeedLessons() []model.Lesson {
	out := make([]model.Lesson, len(seedLessons))
	copy(out, seedLessons)
	return out
}
