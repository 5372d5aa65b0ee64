package clearance

import (
	"errors"
	"testing"

	werrors "github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

// fakeLookup implements MemberLookup against a fixed membership map.
type fakeLookup struct {
	members map[string][]string
}

func (f *fakeLookup) MemberRoles(userID string) ([]string, error) {
	roles, ok := f.members[userID]
	if !ok {
		return nil, errors.New("unknown member")
	}
	return roles, nil
}

func testMetadata() models.Metadata {
	meta := models.DefaultMetadata()
	meta.AdminRoleID = "r-admin"
	meta.BotRoleID = "r-bot"
	meta.SeniorRoleID = "r-senior"
	meta.HmodRoleID = "r-hmod"
	meta.SmodRoleID = "r-smod"
	meta.RmodRoleID = "r-rmod"
	meta.TmodRoleID = "r-tmod"
	meta.HelperRoleID = "r-helper"
	return meta
}

func newTestResolver(meta models.Metadata, members map[string][]string) *Resolver {
	return NewResolver(
		[]string{"owner-bot"},
		"owner-guild",
		&fakeLookup{members: members},
		func() models.Metadata { return meta },
	)
}

func TestResolveOwners(t *testing.T) {
	r := newTestResolver(testMetadata(), map[string][]string{
		// Guild owner also holds a helper role; ownership must win.
		"owner-guild": {"r-helper"},
	})

	if got := r.Resolve("owner-guild"); got != LevelOwner {
		t.Errorf("Resolve(guild owner) = %v, want %v", got, LevelOwner)
	}

	// Bot owners resolve to 9 even when not a member at all
	if got := r.Resolve("owner-bot"); got != LevelOwner {
		t.Errorf("Resolve(bot owner) = %v, want %v", got, LevelOwner)
	}
}

func TestResolveNonMember(t *testing.T) {
	r := newTestResolver(testMetadata(), map[string][]string{})

	if got := r.Resolve("stranger"); got != LevelMember {
		t.Errorf("Resolve(non-member) = %v, want %v", got, LevelMember)
	}
}

func TestResolveHighestTierWins(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		expected int
	}{
		{"no staff roles", []string{"r-unrelated"}, LevelMember},
		{"helper only", []string{"r-helper"}, LevelHelper},
		{"smod and helper", []string{"r-smod", "r-helper"}, LevelSmod},
		{"admin among many", []string{"r-helper", "r-tmod", "r-admin"}, LevelAdmin},
		{"senior and hmod", []string{"r-hmod", "r-senior"}, LevelSenior},
		{"empty role set", []string{}, LevelMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(testMetadata(), map[string][]string{"u": tt.roles})
			if got := r.Resolve("u"); got != tt.expected {
				t.Errorf("Resolve() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolveUnsetTiers(t *testing.T) {
	// A partially-configured guild: only rmod is mapped. Everything else
	// must be skipped without matching the empty role ID.
	meta := models.DefaultMetadata()
	meta.RmodRoleID = "r-rmod"

	r := newTestResolver(meta, map[string][]string{
		"mod":    {"r-rmod"},
		"member": {""},
	})

	if got := r.Resolve("mod"); got != LevelRmod {
		t.Errorf("Resolve(mod) = %v, want %v", got, LevelRmod)
	}
	if got := r.Resolve("member"); got != LevelMember {
		t.Errorf("Resolve(member) = %v, want %v", got, LevelMember)
	}
}

func TestCheck(t *testing.T) {
	for level := 0; level <= 9; level++ {
		for required := 0; required <= 9; required++ {
			err := Check(level, required)
			if level >= required && err != nil {
				t.Errorf("Check(%d, %d) = %v, want nil", level, required, err)
			}
			if level < required {
				if !errors.Is(err, werrors.ErrInsufficientClearance) {
					t.Errorf("Check(%d, %d) = %v, want ErrInsufficientClearance", level, required, err)
				}
			}
		}
	}
}

func TestGuardTarget(t *testing.T) {
	r := newTestResolver(testMetadata(), map[string][]string{
		"civilian": {"r-unrelated"},
		"helper":   {"r-helper"},
		"admin":    {"r-admin"},
	})

	if err := r.GuardTarget("civilian"); err != nil {
		t.Errorf("GuardTarget(civilian) = %v, want nil", err)
	}

	// Non-members are unprotected
	if err := r.GuardTarget("stranger"); err != nil {
		t.Errorf("GuardTarget(stranger) = %v, want nil", err)
	}

	for _, target := range []string{"helper", "admin", "owner-guild", "owner-bot"} {
		if err := r.GuardTarget(target); !errors.Is(err, werrors.ErrProtectedTarget) {
			t.Errorf("GuardTarget(%s) = %v, want ErrProtectedTarget", target, err)
		}
	}
}

func TestTierTableOrder(t *testing.T) {
	table := TierTable(testMetadata())

	if len(table) != 8 {
		t.Fatalf("table length = %v, want %v", len(table), 8)
	}

	for i := 1; i < len(table); i++ {
		if table[i].Level >= table[i-1].Level {
			t.Errorf("table not ordered highest-first at index %d", i)
		}
	}

	if table[0].Level != LevelAdmin || table[len(table)-1].Level != LevelHelper {
		t.Error("table must span admin down to helper")
	}
}
