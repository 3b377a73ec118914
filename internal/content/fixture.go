package content

import (
	"context"

	"genie-scoreboard-service/internal/domain"
)

// FixtureProvider returns a static set of rubrics useful for local testing
// and for running a match without the remote store.
type FixtureProvider struct{}

// NewFixtureProvider creates a fixture provider.
func NewFixtureProvider() *FixtureProvider {
	return &FixtureProvider{}
}

// FetchRubrics returns a deterministic set of example rubrics.
func (p *FixtureProvider) FetchRubrics(ctx context.Context) ([]domain.Rubric, error) {
	_ = ctx
	return []domain.Rubric{
		{
			ID:          "fixture-eclair",
			Title:       "Questions éclair",
			Description: "Réponse directe, dix points par bonne réponse.",
			Order:       1,
			Questions: []domain.Question{
				{
					ID:   "q-eclair-1",
					Type: domain.QuestionSingleAnswer,
					Text: "Quelle est la capitale du Sénégal ?",
					Answers: []domain.Answer{
						{Text: "Dakar", Correct: true},
						{Text: "Saint-Louis"},
						{Text: "Thiès"},
					},
				},
				{
					ID:   "q-eclair-2",
					Type: domain.QuestionMultipleAnswer,
					Text: "Lesquels de ces fleuves traversent l'Afrique de l'Ouest ?",
					Answers: []domain.Answer{
						{Text: "Le Niger", Correct: true},
						{Text: "Le Sénégal", Correct: true},
						{Text: "Le Danube"},
					},
				},
			},
		},
		{
			ID:          "fixture-identification",
			Title:       "Identification",
			Description: "Les indices valent de moins en moins de points.",
			Restriction: "Une seule réponse par équipe.",
			Order:       2,
			Questions: []domain.Question{
				{
					ID:   "q-ident-1",
					Type: domain.QuestionIdentification,
					Text: "Identifiez ce personnage historique.",
					Clues: []domain.Clue{
						{Text: "Né en 1906 à Joal.", Points: 40},
						{Text: "Poète et académicien.", Points: 30},
						{Text: "Premier président du Sénégal.", Points: 20},
						{Text: "Chantre de la négritude.", Points: 10},
					},
					Solution: "Léopold Sédar Senghor",
				},
			},
		},
		{
			ID:          "fixture-drapeaux",
			Title:       "Drapeaux",
			Description: "Reconnaissez le pays à son drapeau.",
			Order:       3,
			Questions: []domain.Question{
				{
					ID:       "q-flag-1",
					Type:     domain.QuestionFlagImage,
					Text:     "Quel pays ce drapeau représente-t-il ?",
					Image:    "flags/gn.png",
					Solution: "Guinée",
				},
			},
		},
	}, nil
}
