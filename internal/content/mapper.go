package content

import (
	"sort"
	"strings"

	"genie-scoreboard-service/internal/domain"
)

func mapRubrics(docs []rubricDoc) []domain.Rubric {
	rubrics := make([]domain.Rubric, 0, len(docs))
	for _, doc := range docs {
		rubrics = append(rubrics, mapRubric(doc))
	}
	sort.SliceStable(rubrics, func(i, j int) bool {
		return rubrics[i].Order < rubrics[j].Order
	})
	return rubrics
}

func mapRubric(doc rubricDoc) domain.Rubric {
	questions := make([]domain.Question, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		questions = append(questions, mapQuestion(q))
	}
	return domain.Rubric{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Restriction: doc.Restriction,
		Order:       doc.Order,
		Questions:   questions,
	}
}

func mapQuestion(doc questionDoc) domain.Question {
	q := domain.Question{
		ID:       doc.ID,
		Type:     mapQuestionType(doc.Type),
		Text:     doc.Text,
		Solution: doc.Solution,
		Image:    doc.Image,
	}
	for _, a := range doc.Answers {
		q.Answers = append(q.Answers, domain.Answer{Text: a.Text, Correct: a.Correct})
	}
	for _, c := range doc.Clues {
		q.Clues = append(q.Clues, domain.Clue{Text: c.Text, Points: c.Points, Revealed: c.Revealed})
	}
	return q
}

func mapQuestionType(raw string) domain.QuestionType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "multiple", "multiple-answer", "multiple_answer":
		return domain.QuestionMultipleAnswer
	case "identification":
		return domain.QuestionIdentification
	case "flag", "flag-image", "flag_image":
		return domain.QuestionFlagImage
	default:
		return domain.QuestionSingleAnswer
	}
}
