package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

// counterDoc backs the atomic case-id sequence. Scanning for max(case_id)+1
// races under concurrent writers, so allocation goes through a single
// find-and-increment on this document instead.
type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

const caseCounterID = "case_id"

// ModlogService is the moderation case ledger. It exclusively owns the
// persisted representation; values handed out are immutable snapshots.
type ModlogService struct {
	cases    *Collection[models.Modlog]
	counters *mongo.Collection

	seedMu sync.Mutex
	seeded bool
}

var (
	modlogSvc  *ModlogService
	modlogOnce sync.Once
)

// InitModlogService initializes the global ledger instance
func InitModlogService(db *Database) *ModlogService {
	modlogOnce.Do(func() {
		modlogSvc = NewModlogService(db)
	})
	return modlogSvc
}

// Modlogs returns the global ledger instance
func Modlogs() *ModlogService {
	return modlogSvc
}

// NewModlogService creates a ledger over the given database
func NewModlogService(db *Database) *ModlogService {
	return &ModlogService{
		cases:    NewCollection[models.Modlog](CollectionModlogs, db),
		counters: db.GetCollection(CollectionCounters),
	}
}

// seedCounter raises the sequence to the highest existing case id so a
// ledger written before the counter existed keeps its numbering. $max makes
// re-seeding a no-op.
func (s *ModlogService) seedCounter(ctx context.Context) error {
	latest, err := s.cases.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "case_id", Value: -1}}))
	if err != nil {
		return err
	}

	var maxID int64
	if latest != nil {
		maxID = latest.CaseID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = s.counters.UpdateOne(ctx,
		bson.M{"_id": caseCounterID},
		bson.M{"$max": bson.M{"seq": maxID}},
		options.Update().SetUpsert(true),
	)
	return err
}

// AllocateCaseID returns the next case identifier. IDs are positive,
// globally unique and strictly increasing in assignment order.
func (s *ModlogService) AllocateCaseID(ctx context.Context) (int64, error) {
	if s.counters == nil {
		return 0, errors.ErrStoreUnavailable
	}

	s.seedMu.Lock()
	if !s.seeded {
		if err := s.seedCounter(ctx); err != nil {
			s.seedMu.Unlock()
			return 0, err
		}
		s.seeded = true
	}
	s.seedMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDoc
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": caseCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

// CreateCase allocates an identifier, persists the case and returns the
// stored snapshot
func (s *ModlogService) CreateCase(ctx context.Context, m models.Modlog) (*models.Modlog, error) {
	id, err := s.AllocateCaseID(ctx)
	if err != nil {
		return nil, err
	}
	m.CaseID = id

	if err := s.cases.InsertOne(ctx, m); err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Case #%d created: %s on %s by %s", m.CaseID, m.Type, m.UserID, m.ModID), "Modlog")
	return &m, nil
}

// UpdateCase applies a partial field update to the single case matching
// the filter and returns the post-update snapshot. A filter matching
// nothing fails with a CaseNotFound carrying the filter.
func (s *ModlogService) UpdateCase(ctx context.Context, filter bson.M, updates bson.M) (*models.Modlog, error) {
	updated, err := s.cases.PatchOne(ctx, filter, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.NewCaseNotFound(filter)
	}
	return updated, nil
}

// SearchCases returns all cases matching the filter in store order. No
// matches is a failure, not an empty success: callers surface it to the
// invoker rather than iterating silently.
func (s *ModlogService) SearchCases(ctx context.Context, filter bson.M) ([]*models.Modlog, error) {
	found, err := s.cases.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errors.NewCaseNotFound(filter)
	}
	return found, nil
}

// CaseByID returns the single case with the given identifier
func (s *ModlogService) CaseByID(ctx context.Context, caseID int64) (*models.Modlog, error) {
	filter := bson.M{"case_id": caseID}
	found, err := s.cases.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewCaseNotFound(filter)
	}
	return found, nil
}

// ActiveCases returns every case currently in force. An empty ledger is
// returned as an empty slice here: the sweeper polls this on a timer and
// "nothing to do" is not a user-facing condition.
func (s *ModlogService) ActiveCases(ctx context.Context) ([]*models.Modlog, error) {
	return s.cases.FindAll(ctx, bson.M{"status": models.StatusActive})
}

// ActiveCaseFor returns the in-force case of the given type against a
// user, if any. Reversal commands use this to find what to undo.
func (s *ModlogService) ActiveCaseFor(ctx context.Context, userID string, caseType models.CaseType) (*models.Modlog, error) {
	filter := bson.M{
		"user_id": userID,
		"type":    caseType,
		"status":  models.StatusActive,
	}
	found, err := s.cases.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewCaseNotFound(filter)
	}
	return found, nil
}

// MarkReversed transitions an in-force case to reversed, recording why
func (s *ModlogService) MarkReversed(ctx context.Context, caseID int64, reason string) (*models.Modlog, error) {
	updates := bson.M{"status": models.StatusReversed}
	if reason != "" {
		updates["reason"] = reason
	}
	return s.UpdateCase(ctx, bson.M{"case_id": caseID, "status": models.StatusActive}, updates)
}

// MarkExpired transitions an in-force case to expired. The status guard in
// the filter makes the transition happen exactly once even if two sweeps
// race.
func (s *ModlogService) MarkExpired(ctx context.Context, caseID int64) (*models.Modlog, error) {
	return s.UpdateCase(ctx,
		bson.M{"case_id": caseID, "status": models.StatusActive},
		bson.M{"status": models.StatusExpired},
	)
}

// VoidCase soft-deletes a case. The record is never physically removed.
func (s *ModlogService) VoidCase(ctx context.Context, caseID int64) (*models.Modlog, error) {
	return s.UpdateCase(ctx,
		bson.M{"case_id": caseID},
		bson.M{"status": models.StatusVoided},
	)
}

// CaseCount returns the total number of cases in the ledger
func (s *ModlogService) CaseCount(ctx context.Context) (int64, error) {
	return s.cases.Count(ctx, bson.M{})
}
