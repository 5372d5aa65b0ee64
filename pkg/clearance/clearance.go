// Package clearance maps guild members to their moderation authority level
// and gates moderation commands on it.
//
// Levels are integers 0-9: 0 is an ordinary member, 1-8 are the staff tiers
// (helper < tmod < rmod < smod < hmod < senior < bot < admin) and 9 is
// reserved for the guild owner and registered bot owners. A higher level
// strictly dominates a lower one.
package clearance

import (
	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

const (
	LevelMember = 0
	LevelHelper = 1
	LevelTmod   = 2
	LevelRmod   = 3
	LevelSmod   = 4
	LevelHmod   = 5
	LevelSenior = 6
	LevelBot    = 7
	LevelAdmin  = 8
	LevelOwner  = 9
)

// Tier binds one staff level to its configured role ID. An unset role ID
// means the tier is not in use and can never match.
type Tier struct {
	Level  int
	RoleID string
}

// TierTable builds the ordered tier table from the guild metadata, highest
// level first. Resolution is a plain scan over this table.
func TierTable(meta models.Metadata) []Tier {
	return []Tier{
		{LevelAdmin, meta.AdminRoleID},
		{LevelBot, meta.BotRoleID},
		{LevelSenior, meta.SeniorRoleID},
		{LevelHmod, meta.HmodRoleID},
		{LevelSmod, meta.SmodRoleID},
		{LevelRmod, meta.RmodRoleID},
		{LevelTmod, meta.TmodRoleID},
		{LevelHelper, meta.HelperRoleID},
	}
}

// MemberLookup resolves a user's current role set within the guild.
// Implemented by the Discord gateway; a lookup failure means the user is
// not a member.
type MemberLookup interface {
	MemberRoles(userID string) ([]string, error)
}

// Resolver computes clearance levels for guild members.
type Resolver struct {
	ownerIDs     []string
	guildOwnerID string
	lookup       MemberLookup
	metadata     func() models.Metadata
}

// NewResolver builds a resolver. metadata is called on every resolution so
// the tier table always reflects the current configuration cache.
func NewResolver(ownerIDs []string, guildOwnerID string, lookup MemberLookup, metadata func() models.Metadata) *Resolver {
	return &Resolver{
		ownerIDs:     ownerIDs,
		guildOwnerID: guildOwnerID,
		lookup:       lookup,
		metadata:     metadata,
	}
}

// Resolve returns the clearance level for a user. Owners always resolve to
// 9; anyone whose membership cannot be confirmed resolves to 0. Lookup
// errors are swallowed, never propagated.
func (r *Resolver) Resolve(userID string) int {
	if userID == r.guildOwnerID {
		return LevelOwner
	}
	for _, id := range r.ownerIDs {
		if id == userID {
			return LevelOwner
		}
	}

	roles, err := r.lookup.MemberRoles(userID)
	if err != nil {
		return LevelMember
	}

	roleSet := make(map[string]struct{}, len(roles))
	for _, id := range roles {
		roleSet[id] = struct{}{}
	}

	for _, tier := range TierTable(r.metadata()) {
		if tier.RoleID == "" {
			continue
		}
		if _, ok := roleSet[tier.RoleID]; ok {
			return tier.Level
		}
	}
	return LevelMember
}

// Check is the command-level gate: the invoker passes iff their level meets
// the command's declared requirement.
func Check(level, required int) error {
	if level < required {
		return errors.NewInsufficientClearance(level, required)
	}
	return nil
}

// GuardTarget rejects moderation actions against staff and owners. Any
// target with clearance above 0 is protected regardless of the actor's
// own clearance.
func (r *Resolver) GuardTarget(targetID string) error {
	if level := r.Resolve(targetID); level > LevelMember {
		return errors.NewProtectedTarget(targetID, level)
	}
	return nil
}
