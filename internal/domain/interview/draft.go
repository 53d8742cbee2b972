package interview

// QuestionDraft is what the question generator returns before the batch is
// assigned ids, company tags and timestamps. JSON tags match the generator's
// response payload; unknown fields are ignored.
type QuestionDraft struct {
	Title        string     `json:"title"`
	Difficulty   string     `json:"difficulty"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	InputFormat  string     `json:"input_format"`
	OutputFormat string     `json:"output_format"`
	Examples     []Example  `json:"examples"`
	Constraints  []string   `json:"constraints"`
	TestCases    []TestCase `json:"test_cases"`
	Frequency    string     `json:"frequency"`
	Hint         string     `json:"hint"`
}

// ProfileSummary is the personalization context handed to the generator.
type ProfileSummary struct {
	SolvedCount  int
	WeakTopics   []string
	StrongTopics []string
}

// SkillLevel buckets the solved count the way the generator prompt expects.
func (p ProfileSummary) SkillLevel() string {
	switch {
	case p.SolvedCount < 10:
		return "Beginner"
	case p.SolvedCount < 50:
		return "Intermediate"
	default:
		return "Advanced"
	}
}
