package domain

// QuestionType discriminates the rubric question shapes.
type QuestionType string

const (
	QuestionSingleAnswer   QuestionType = "SINGLE_ANSWER"
	QuestionMultipleAnswer QuestionType = "MULTIPLE_ANSWER"
	QuestionIdentification QuestionType = "IDENTIFICATION"
	QuestionFlagImage      QuestionType = "FLAG_IMAGE"
)

// Answer is one proposed answer with its correctness flag.
type Answer struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Clue is one step of an identification question. Points decrease as more
// clues are revealed; Revealed tracks presentation progress.
type Clue struct {
	Text     string `json:"text"`
	Points   int    `json:"points"`
	Revealed bool   `json:"revealed"`
}

// Question is a single quiz item inside a rubric.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Text     string       `json:"text"`
	Answers  []Answer     `json:"answers,omitempty"`
	Clues    []Clue       `json:"clues,omitempty"`
	Solution string       `json:"solution,omitempty"`
	Image    string       `json:"image,omitempty"`
}

// Rubric is an ordered group of questions with its display metadata.
type Rubric struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Restriction string     `json:"restriction,omitempty"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions"`
}
