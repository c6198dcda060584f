package form

//go:generate go run go.uber.org/mock/mockgen -source=./submitter.go -destination=../mocks/submitter_mock.go -package=mocks

import (
	"context"

	"staysync/internal/domains/booking/model"
)

// Submitter creates a booking from a validated draft. It runs outside the form lock and must
// return once ctx is cancelled.
type Submitter interface {
	Submit(ctx context.Context, draft model.Draft) error
}
