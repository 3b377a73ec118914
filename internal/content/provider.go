// Package content fetches rubric/question documents from the remote store.
// The score engine never depends on this package; content failures surface
// to the presentation layer as an empty state.
package content

import (
	"context"

	"genie-scoreboard-service/internal/domain"
)

// Provider defines how rubric content is fetched and normalized. The
// returned slice preserves the store's display order.
type Provider interface {
	FetchRubrics(ctx context.Context) ([]domain.Rubric, error)
}
