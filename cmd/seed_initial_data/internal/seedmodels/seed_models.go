package seedmodels

// SeedQuestion defines the structure for a question in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// SeedCategory defines the structure for a category in the JSON seed file.
// Questions are attached to the category they are nested under.
type SeedCategory struct {
	Type      string         `json:"type"`
	Questions []SeedQuestion `json:"questions"`
}
