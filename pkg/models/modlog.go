// Package models contains the document shapes persisted to MongoDB.
package models

import "time"

// CaseType is the kind of moderation action a modlog records.
type CaseType string

const (
	CaseTypeBan        CaseType = "ban"
	CaseTypeUnban      CaseType = "unban"
	CaseTypeMute       CaseType = "mute"
	CaseTypeUnmute     CaseType = "unmute"
	CaseTypeKick       CaseType = "kick"
	CaseTypeWarn       CaseType = "warn"
	CaseTypeChannelBan CaseType = "channel_ban"
)

// Enduring reports whether the sanction stays in force until it is
// reversed or expires.
func (t CaseType) Enduring() bool {
	switch t {
	case CaseTypeMute, CaseTypeBan, CaseTypeChannelBan:
		return true
	}
	return false
}

// CaseStatus is the lifecycle state of a modlog. Non-enduring case types
// (warn, kick, unban, unmute) are created with StatusNone and never leave it.
type CaseStatus string

const (
	StatusActive   CaseStatus = "active"
	StatusExpired  CaseStatus = "expired"
	StatusReversed CaseStatus = "reversed"
	StatusVoided   CaseStatus = "voided"
	StatusNone     CaseStatus = "none"
)

// PermDuration is the duration threshold, in seconds, above which a
// sanction is treated as permanent.
const PermDuration int64 = 1<<32 - 1

// DefaultReason is stored when the moderator gives no reason.
const DefaultReason = "No reason provided."

// Modlog is one persisted moderation case. Instances are immutable
// snapshots read from or about to be written to the ledger; mutations go
// through partial updates on the store.
type Modlog struct {
	CaseID    int64      `bson:"case_id" json:"caseId"`
	UserID    string     `bson:"user_id" json:"userId"`
	ModID     string     `bson:"mod_id" json:"modId"`
	ChannelID string     `bson:"channel_id,omitempty" json:"channelId,omitempty"`
	Type      CaseType   `bson:"type" json:"type"`
	Reason    string     `bson:"reason" json:"reason"`
	Created   int64      `bson:"created" json:"created"`
	Duration  int64      `bson:"duration,omitempty" json:"duration,omitempty"`
	Received  bool       `bson:"received" json:"received"`
	Status    CaseStatus `bson:"status" json:"status"`
}

// NewModlog builds an unsaved case with the status the invariant demands:
// active for enduring types, none for everything else. The case ID is
// assigned by the ledger at creation time.
func NewModlog(userID, modID, channelID string, caseType CaseType, reason string, created time.Time, duration time.Duration) Modlog {
	if reason == "" {
		reason = DefaultReason
	}

	status := StatusNone
	if caseType.Enduring() {
		status = StatusActive
	}

	return Modlog{
		UserID:    userID,
		ModID:     modID,
		ChannelID: channelID,
		Type:      caseType,
		Reason:    reason,
		Created:   created.Unix(),
		Duration:  int64(duration.Seconds()),
		Status:    status,
	}
}

// Permanent reports whether the sanction has no expiry.
func (m Modlog) Permanent() bool {
	return m.Duration <= 0 || m.Duration >= PermDuration
}

// CreatedAt returns the creation timestamp as a time value.
func (m Modlog) CreatedAt() time.Time {
	return time.Unix(m.Created, 0).UTC()
}

// Until returns the moment the sanction lapses. The zero time means the
// sanction is permanent and Until is meaningless.
func (m Modlog) Until() time.Time {
	if m.Permanent() {
		return time.Time{}
	}
	return time.Unix(m.Created+m.Duration, 0).UTC()
}

// IsExpired reports whether the sanction's time window has elapsed at now.
// Permanent sanctions never expire.
func (m Modlog) IsExpired(now time.Time) bool {
	if m.Permanent() {
		return false
	}
	return now.After(m.Until())
}

// InForce reports whether the sanction is currently being enforced.
func (m Modlog) InForce() bool {
	return m.Status == StatusActive
}

// Voided reports whether the case has been soft-deleted.
func (m Modlog) Voided() bool {
	return m.Status == StatusVoided
}
