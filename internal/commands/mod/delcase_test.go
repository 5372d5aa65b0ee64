package mod

import (
	"errors"
	"testing"
	"time"

	"github.com/WardenLabs/WardenGo/pkg/models"
)

type fakeLifter struct {
	unbans        []string
	unmutes       []string
	channelUnbans [][2]string
	err           error
}

func (f *fakeLifter) Unban(userID string) error {
	f.unbans = append(f.unbans, userID)
	return f.err
}

func (f *fakeLifter) Unmute(userID string) error {
	f.unmutes = append(f.unmutes, userID)
	return f.err
}

func (f *fakeLifter) ChannelUnban(channelID, userID string) error {
	f.channelUnbans = append(f.channelUnbans, [2]string{channelID, userID})
	return f.err
}

func liftCase(caseType models.CaseType, channelID string) models.Modlog {
	m := models.NewModlog("u1", "mod1", channelID, caseType, "test", time.Now(), time.Hour)
	m.CaseID = 7
	return m
}

func TestLiftSanctionByType(t *testing.T) {
	t.Run("ban lifts via unban", func(t *testing.T) {
		gw := &fakeLifter{}
		if err := liftSanction(gw, liftCase(models.CaseTypeBan, "")); err != nil {
			t.Fatalf("liftSanction returned error: %v", err)
		}
		if len(gw.unbans) != 1 || gw.unbans[0] != "u1" {
			t.Errorf("unbans = %v, want [u1]", gw.unbans)
		}
	})

	t.Run("mute lifts via unmute", func(t *testing.T) {
		gw := &fakeLifter{}
		if err := liftSanction(gw, liftCase(models.CaseTypeMute, "")); err != nil {
			t.Fatalf("liftSanction returned error: %v", err)
		}
		if len(gw.unmutes) != 1 || gw.unmutes[0] != "u1" {
			t.Errorf("unmutes = %v, want [u1]", gw.unmutes)
		}
	})

	t.Run("channel ban lifts in its channel", func(t *testing.T) {
		gw := &fakeLifter{}
		if err := liftSanction(gw, liftCase(models.CaseTypeChannelBan, "c9")); err != nil {
			t.Fatalf("liftSanction returned error: %v", err)
		}
		want := [2]string{"c9", "u1"}
		if len(gw.channelUnbans) != 1 || gw.channelUnbans[0] != want {
			t.Errorf("channelUnbans = %v, want [%v]", gw.channelUnbans, want)
		}
	})

	t.Run("non-enduring types are a no-op", func(t *testing.T) {
		for _, caseType := range []models.CaseType{models.CaseTypeWarn, models.CaseTypeKick, models.CaseTypeUnban, models.CaseTypeUnmute} {
			gw := &fakeLifter{err: errors.New("must not be called")}
			if err := liftSanction(gw, liftCase(caseType, "")); err != nil {
				t.Errorf("liftSanction(%s) = %v, want nil", caseType, err)
			}
		}
	})

	t.Run("gateway failure is surfaced", func(t *testing.T) {
		gw := &fakeLifter{err: errors.New("missing permissions")}
		if err := liftSanction(gw, liftCase(models.CaseTypeBan, "")); err == nil {
			t.Error("liftSanction = nil, want the gateway error")
		}
	})
}

// Only cases the ledger still shows active carry a live platform
// sanction; voiding anything else must not touch the gateway.
func TestInForceGatesLifting(t *testing.T) {
	active := liftCase(models.CaseTypeBan, "")
	if !active.InForce() {
		t.Fatal("fresh enduring case should be in force")
	}

	expired := active
	expired.Status = models.StatusExpired
	if expired.InForce() {
		t.Error("expired case reported in force")
	}

	warn := liftCase(models.CaseTypeWarn, "")
	if warn.InForce() {
		t.Error("warn case reported in force")
	}
}
