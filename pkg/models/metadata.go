package models

// Metadata is the singleton configuration document for the guild.
// Exactly one instance exists; it is lazily created with empty defaults
// on first read and mutated only through partial field updates.
type Metadata struct {
	LoggingChannelID string `bson:"logging_channel_id,omitempty" json:"loggingChannelId,omitempty"`
	GeneralChannelID string `bson:"general_channel_id,omitempty" json:"generalChannelId,omitempty"`

	AdminRoleID  string `bson:"admin_role_id,omitempty" json:"adminRoleId,omitempty"`
	BotRoleID    string `bson:"bot_role_id,omitempty" json:"botRoleId,omitempty"`
	SeniorRoleID string `bson:"senior_role_id,omitempty" json:"seniorRoleId,omitempty"`
	HmodRoleID   string `bson:"hmod_role_id,omitempty" json:"hmodRoleId,omitempty"`
	SmodRoleID   string `bson:"smod_role_id,omitempty" json:"smodRoleId,omitempty"`
	RmodRoleID   string `bson:"rmod_role_id,omitempty" json:"rmodRoleId,omitempty"`
	TmodRoleID   string `bson:"tmod_role_id,omitempty" json:"tmodRoleId,omitempty"`
	HelperRoleID string `bson:"helper_role_id,omitempty" json:"helperRoleId,omitempty"`
	ActiveRoleID string `bson:"active_role_id,omitempty" json:"activeRoleId,omitempty"`

	DomainBL []string `bson:"domain_bl" json:"domainBl"`
	DomainWL []string `bson:"domain_wl" json:"domainWl"`

	EventIgnoredRoleIDs      []string `bson:"event_ignored_role_ids" json:"eventIgnoredRoleIds"`
	AutomodIgnoredRoleIDs    []string `bson:"automod_ignored_role_ids" json:"automodIgnoredRoleIds"`
	EventIgnoredChannelIDs   []string `bson:"event_ignored_channel_ids" json:"eventIgnoredChannelIds"`
	AutomodIgnoredChannelIDs []string `bson:"automod_ignored_channel_ids" json:"automodIgnoredChannelIds"`

	Activity  string `bson:"activity,omitempty" json:"activity,omitempty"`
	Greeting  string `bson:"greeting,omitempty" json:"greeting,omitempty"`
	AppealURL string `bson:"appeal_url,omitempty" json:"appealUrl,omitempty"`
}

// DefaultMetadata returns the all-empty document inserted the first time
// the metadata collection is read.
func DefaultMetadata() Metadata {
	return Metadata{
		DomainBL:                 []string{},
		DomainWL:                 []string{},
		EventIgnoredRoleIDs:      []string{},
		AutomodIgnoredRoleIDs:    []string{},
		EventIgnoredChannelIDs:   []string{},
		AutomodIgnoredChannelIDs: []string{},
	}
}
