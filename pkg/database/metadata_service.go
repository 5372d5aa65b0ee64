package database

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

// metadataID is the _id of the single guild configuration document
const metadataID = "guild"

// MetadataService manages the guild configuration document. Reads are
// served from an in-process snapshot that is replaced wholesale after
// every successful load or update, so readers never see a half-applied
// change.
type MetadataService struct {
	coll *Collection[models.Metadata]

	mu       sync.RWMutex
	snapshot models.Metadata
}

var (
	metadataSvc  *MetadataService
	metadataOnce sync.Once
)

// InitMetadataService initializes the global metadata instance
func InitMetadataService(db *Database) *MetadataService {
	metadataOnce.Do(func() {
		metadataSvc = NewMetadataService(db)
	})
	return metadataSvc
}

// Meta returns the global metadata instance
func Meta() *MetadataService {
	return metadataSvc
}

// NewMetadataService creates a metadata service with default settings
// until Load is called
func NewMetadataService(db *Database) *MetadataService {
	return &MetadataService{
		coll:     NewCollection[models.Metadata](CollectionMetadata, db),
		snapshot: models.DefaultMetadata(),
	}
}

// Load fetches the configuration document, creating it with defaults on
// first run, and installs it as the current snapshot
func (s *MetadataService) Load(ctx context.Context) error {
	found, err := s.coll.FindOne(ctx, bson.M{"_id": metadataID})
	if err != nil {
		return err
	}

	if found == nil {
		defaults := models.DefaultMetadata()
		created, err := s.coll.UpsertOne(ctx, bson.M{"_id": metadataID}, toUpdateMap(defaults))
		if err != nil {
			return err
		}
		found = created
		logger.Info("Guild configuration created with defaults", "Metadata")
	}

	s.mu.Lock()
	s.snapshot = *found
	s.mu.Unlock()
	return nil
}

// Current returns the configuration snapshot
func (s *MetadataService) Current() models.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Update applies a partial field update, persists it and replaces the
// snapshot with the stored result. Unnamed fields keep their values.
func (s *MetadataService) Update(ctx context.Context, updates bson.M) (models.Metadata, error) {
	stored, err := s.coll.UpsertOne(ctx, bson.M{"_id": metadataID}, updates)
	if err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	s.snapshot = *stored
	s.mu.Unlock()

	logger.Info("Guild configuration updated", "Metadata")
	return *stored, nil
}

// toUpdateMap flattens a Metadata value into a $set-style field map so
// the first-run insert and later partial updates go through the same
// upsert path
func toUpdateMap(m models.Metadata) bson.M {
	return bson.M{
		"logging_channel_id":          m.LoggingChannelID,
		"general_channel_id":          m.GeneralChannelID,
		"admin_role_id":               m.AdminRoleID,
		"bot_role_id":                 m.BotRoleID,
		"senior_role_id":              m.SeniorRoleID,
		"hmod_role_id":                m.HmodRoleID,
		"smod_role_id":                m.SmodRoleID,
		"rmod_role_id":                m.RmodRoleID,
		"tmod_role_id":                m.TmodRoleID,
		"helper_role_id":              m.HelperRoleID,
		"active_role_id":              m.ActiveRoleID,
		"domain_bl":                   m.DomainBL,
		"domain_wl":                   m.DomainWL,
		"event_ignored_role_ids":      m.EventIgnoredRoleIDs,
		"automod_ignored_role_ids":    m.AutomodIgnoredRoleIDs,
		"event_ignored_channel_ids":   m.EventIgnoredChannelIDs,
		"automod_ignored_channel_ids": m.AutomodIgnoredChannelIDs,
		"activity":                    m.Activity,
		"greeting":                    m.Greeting,
		"appeal_url":                  m.AppealURL,
	}
}
