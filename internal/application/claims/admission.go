package claims

import (
	"context"

	"github.com/claimgate/backend/internal/domain/claim"
	"go.uber.org/zap"
)

// AdmissionService orchestrates validation over a list of candidates and
// publishes the admitted ones to the fulfillment queue.
//
// Policy: partial admission. Every candidate is validated independently;
// admitted candidates are queued and rejected ones are reported
// per-candidate. A store failure aborts the whole request with nothing
// published, because no candidate's state can be trusted once the store
// misbehaves.
//
// Publishing happens strictly after all validation completes. Admitted
// messages are accumulated into size-bounded batches; when the transport
// ceiling is reached the accumulator rolls over into a further physical
// batch rather than dropping a claim.
type AdmissionService struct {
	validator *Validator
	publisher claim.Publisher
	logger    *zap.Logger
}

// NewAdmissionService creates an AdmissionService.
func NewAdmissionService(validator *Validator, publisher claim.Publisher, logger *zap.Logger) *AdmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdmissionService{
		validator: validator,
		publisher: publisher,
		logger:    logger.Named("admission"),
	}
}

// Submit validates the candidates in order and publishes the admitted ones.
//
// The returned error is nil for pure business-rule outcomes, including the
// all-rejected case; callers distinguish that by SubmitResult.Admitted.
// Infrastructure failures are returned as *claim.StoreError,
// *claim.BatchTooLargeError, or *claim.PublishError. On a PublishError the
// result still carries the exact published count so the caller knows which
// messages are in flight.
func (s *AdmissionService) Submit(ctx context.Context, candidates []claim.Candidate) (*SubmitResult, error) {
	result := &SubmitResult{Rejections: make([]Rejection, 0)}

	type admitted struct {
		candidate claim.Candidate
		amount    int64
	}
	var admittedClaims []admitted

	for _, cand := range candidates {
		verdict, amount, err := s.validator.Validate(ctx, cand)
		if err != nil {
			s.logger.Error("validation aborted",
				zap.String("address", cand.Address),
				zap.String("item_id", cand.ItemID),
				zap.Error(err),
			)
			return nil, err
		}
		if !verdict.Admitted() {
			s.logger.Warn("claim rejected",
				zap.String("address", cand.Address),
				zap.String("item_id", cand.ItemID),
				zap.String("reason", verdict.Reason()),
			)
			result.Rejections = append(result.Rejections, Rejection{
				Address: cand.Address,
				ItemID:  cand.ItemID,
				Reason:  verdict.Reason(),
			})
			continue
		}
		admittedClaims = append(admittedClaims, admitted{candidate: cand, amount: amount})
	}

	result.AdmittedCount = len(admittedClaims)
	if len(admittedClaims) == 0 {
		return result, nil
	}

	// Accumulate into physical batches, rolling over at the transport
	// ceiling. A message that does not fit even in an empty batch cannot be
	// delivered at all.
	batches := []claim.MessageBatch{s.publisher.NewBatch()}
	for _, a := range admittedClaims {
		msg := claim.Message{Address: a.candidate.Address, ItemID: a.candidate.ItemID, Amount: a.amount}
		current := batches[len(batches)-1]
		if current.TryAdd(msg) {
			continue
		}
		if current.Len() == 0 {
			return result, &claim.BatchTooLargeError{Candidate: a.candidate}
		}
		next := s.publisher.NewBatch()
		if !next.TryAdd(msg) {
			return result, &claim.BatchTooLargeError{Candidate: a.candidate}
		}
		batches = append(batches, next)
	}

	for _, batch := range batches {
		if err := s.publisher.Send(ctx, batch); err != nil {
			s.logger.Error("queue publish failed",
				zap.Int("published", result.PublishedCount),
				zap.Int("pending", result.AdmittedCount-result.PublishedCount),
				zap.Error(err),
			)
			return result, &claim.PublishError{
				Published: result.PublishedCount,
				Pending:   result.AdmittedCount - result.PublishedCount,
				Err:       err,
			}
		}
		result.PublishedCount += batch.Len()
	}

	s.logger.Info("claims admitted",
		zap.Int("admitted", result.AdmittedCount),
		zap.Int("published", result.PublishedCount),
		zap.Int("rejected", len(result.Rejections)),
		zap.Int("batches", len(batches)),
	)
	return result, nil
}
