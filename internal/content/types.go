package content

// Wire types for the remote document store. Kept separate from the domain
// model so upstream schema drift stays contained in the mapper.

type rubricsResponse struct {
	Data []rubricDoc `json:"data"`
}

type rubricDoc struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Restriction string        `json:"restriction"`
	Order       int           `json:"order"`
	Questions   []questionDoc `json:"questions"`
}

type questionDoc struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Text     string      `json:"text"`
	Answers  []answerDoc `json:"answers"`
	Clues    []clueDoc   `json:"clues"`
	Solution string      `json:"solution"`
	Image    string      `json:"image"`
}

type answerDoc struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type clueDoc struct {
	Text     string `json:"text"`
	Points   int    `json:"points"`
	Revealed bool   `json:"revealed"`
}
