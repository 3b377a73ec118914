package content

import (
	"testing"

	"genie-scoreboard-service/internal/domain"
)

func TestMapQuestionType(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.QuestionType
	}{
		{"single", domain.QuestionSingleAnswer},
		{"", domain.QuestionSingleAnswer},
		{"unknown-kind", domain.QuestionSingleAnswer},
		{"multiple", domain.QuestionMultipleAnswer},
		{"MULTIPLE_ANSWER", domain.QuestionMultipleAnswer},
		{"multiple-answer", domain.QuestionMultipleAnswer},
		{"Identification", domain.QuestionIdentification},
		{"flag", domain.QuestionFlagImage},
		{"flag_image", domain.QuestionFlagImage},
		{" flag-image ", domain.QuestionFlagImage},
	}

	for _, tc := range cases {
		if got := mapQuestionType(tc.raw); got != tc.want {
			t.Errorf("mapQuestionType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestMapRubricsSortsByOrder(t *testing.T) {
	docs := []rubricDoc{
		{ID: "b", Title: "Seconde", Order: 2},
		{ID: "a", Title: "Première", Order: 1},
		{ID: "c", Title: "Troisième", Order: 3},
	}

	rubrics := mapRubrics(docs)
	if len(rubrics) != 3 {
		t.Fatalf("expected 3 rubrics, got %d", len(rubrics))
	}
	for i, wantID := range []string{"a", "b", "c"} {
		if rubrics[i].ID != wantID {
			t.Errorf("rubrics[%d].ID = %q, want %q", i, rubrics[i].ID, wantID)
		}
	}
}

func TestMapRubricCarriesQuestions(t *testing.T) {
	doc := rubricDoc{
		ID:          "identification",
		Title:       "Identification",
		Description: "Quatre indices, de 40 à 10 points.",
		Order:       1,
		Questions: []questionDoc{
			{
				ID:   "q1",
				Type: "identification",
				Clues: []clueDoc{
					{Text: "Premier indice", Points: 40},
					{Text: "Second indice", Points: 30, Revealed: true},
				},
				Solution: "La réponse",
			},
			{
				ID:   "q2",
				Type: "single",
				Text: "Question directe ?",
				Answers: []answerDoc{
					{Text: "Oui", Correct: true},
					{Text: "Non"},
				},
			},
		},
	}

	rubric := mapRubric(doc)
	if len(rubric.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(rubric.Questions))
	}

	ident := rubric.Questions[0]
	if ident.Type != domain.QuestionIdentification {
		t.Errorf("question type = %q, want %q", ident.Type, domain.QuestionIdentification)
	}
	if len(ident.Clues) != 2 || ident.Clues[0].Points != 40 || !ident.Clues[1].Revealed {
		t.Errorf("clues not mapped: %+v", ident.Clues)
	}
	if ident.Solution != "La réponse" {
		t.Errorf("solution = %q", ident.Solution)
	}

	direct := rubric.Questions[1]
	if len(direct.Answers) != 2 || !direct.Answers[0].Correct || direct.Answers[1].Correct {
		t.Errorf("answers not mapped: %+v", direct.Answers)
	}
}
