package sweeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

type fakeLedger struct {
	cases   map[int64]*models.Modlog
	listErr error
}

func (f *fakeLedger) ActiveCases(ctx context.Context) ([]*models.Modlog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var active []*models.Modlog
	for _, c := range f.cases {
		if c.Status == models.StatusActive {
			copied := *c
			active = append(active, &copied)
		}
	}
	return active, nil
}

func (f *fakeLedger) MarkExpired(ctx context.Context, caseID int64) (*models.Modlog, error) {
	c, ok := f.cases[caseID]
	if !ok || c.Status != models.StatusActive {
		return nil, errors.NewCaseNotFound(map[string]interface{}{"case_id": caseID})
	}
	c.Status = models.StatusExpired
	copied := *c
	return &copied, nil
}

type fakeGateway struct {
	unbans        []string
	unmutes       []string
	channelUnbans []string
	failUser      string
}

func (f *fakeGateway) Unban(userID string) error {
	if userID == f.failUser {
		return fmt.Errorf("unban failed for %s", userID)
	}
	f.unbans = append(f.unbans, userID)
	return nil
}

func (f *fakeGateway) Unmute(userID string) error {
	if userID == f.failUser {
		return fmt.Errorf("unmute failed for %s", userID)
	}
	f.unmutes = append(f.unmutes, userID)
	return nil
}

func (f *fakeGateway) ChannelUnban(channelID, userID string) error {
	if userID == f.failUser {
		return fmt.Errorf("channel unban failed for %s", userID)
	}
	f.channelUnbans = append(f.channelUnbans, channelID+"/"+userID)
	return nil
}

func newTestSweeper(ledger *fakeLedger, gateway *fakeGateway, now time.Time) *Sweeper {
	s := New(ledger, gateway)
	s.now = func() time.Time { return now }
	return s
}

func makeCase(id int64, userID string, caseType models.CaseType, created time.Time, duration time.Duration) *models.Modlog {
	m := models.NewModlog(userID, "mod1", "", caseType, "test", created, duration)
	m.CaseID = id
	return &m
}

func TestSweepExpiresElapsedCases(t *testing.T) {
	now := time.Now()
	ledger := &fakeLedger{cases: map[int64]*models.Modlog{
		1: makeCase(1, "u-ban", models.CaseTypeBan, now.Add(-2*time.Hour), time.Hour),
		2: makeCase(2, "u-mute", models.CaseTypeMute, now.Add(-30*time.Minute), time.Hour),
	}}
	gateway := &fakeGateway{}

	newTestSweeper(ledger, gateway, now).Sweep(context.Background())

	if got := ledger.cases[1].Status; got != models.StatusExpired {
		t.Errorf("case 1 status = %v, want %v", got, models.StatusExpired)
	}
	if got := ledger.cases[2].Status; got != models.StatusActive {
		t.Errorf("case 2 status = %v, want %v", got, models.StatusActive)
	}
	if len(gateway.unbans) != 1 || gateway.unbans[0] != "u-ban" {
		t.Errorf("unbans = %v, want [u-ban]", gateway.unbans)
	}
	if len(gateway.unmutes) != 0 {
		t.Errorf("unmutes = %v, want none", gateway.unmutes)
	}
}

func TestSweepSkipsPermanentCases(t *testing.T) {
	now := time.Now()
	ledger := &fakeLedger{cases: map[int64]*models.Modlog{
		1: makeCase(1, "u1", models.CaseTypeBan, now.Add(-24*365*10*time.Hour), 0),
	}}
	gateway := &fakeGateway{}

	newTestSweeper(ledger, gateway, now).Sweep(context.Background())

	if got := ledger.cases[1].Status; got != models.StatusActive {
		t.Errorf("permanent case status = %v, want %v", got, models.StatusActive)
	}
	if len(gateway.unbans) != 0 {
		t.Errorf("unbans = %v, want none", gateway.unbans)
	}
}

func TestSweepLiftsByType(t *testing.T) {
	now := time.Now()
	created := now.Add(-2 * time.Hour)
	ban := makeCase(1, "u1", models.CaseTypeBan, created, time.Hour)
	mute := makeCase(2, "u2", models.CaseTypeMute, created, time.Hour)
	chban := makeCase(3, "u3", models.CaseTypeChannelBan, created, time.Hour)
	chban.ChannelID = "c1"

	ledger := &fakeLedger{cases: map[int64]*models.Modlog{1: ban, 2: mute, 3: chban}}
	gateway := &fakeGateway{}

	newTestSweeper(ledger, gateway, now).Sweep(context.Background())

	if len(gateway.unbans) != 1 || gateway.unbans[0] != "u1" {
		t.Errorf("unbans = %v, want [u1]", gateway.unbans)
	}
	if len(gateway.unmutes) != 1 || gateway.unmutes[0] != "u2" {
		t.Errorf("unmutes = %v, want [u2]", gateway.unmutes)
	}
	if len(gateway.channelUnbans) != 1 || gateway.channelUnbans[0] != "c1/u3" {
		t.Errorf("channelUnbans = %v, want [c1/u3]", gateway.channelUnbans)
	}
}

func TestSweepGatewayFailureLeavesCaseActive(t *testing.T) {
	now := time.Now()
	created := now.Add(-2 * time.Hour)
	ledger := &fakeLedger{cases: map[int64]*models.Modlog{
		1: makeCase(1, "u-fail", models.CaseTypeBan, created, time.Hour),
		2: makeCase(2, "u-ok", models.CaseTypeBan, created, time.Hour),
	}}
	gateway := &fakeGateway{failUser: "u-fail"}

	s := newTestSweeper(ledger, gateway, now)
	s.Sweep(context.Background())

	if got := ledger.cases[1].Status; got != models.StatusActive {
		t.Errorf("failed case status = %v, want %v", got, models.StatusActive)
	}
	if got := ledger.cases[2].Status; got != models.StatusExpired {
		t.Errorf("other case status = %v, want %v", got, models.StatusExpired)
	}

	// Next pass succeeds and expires the retried case
	gateway.failUser = ""
	s.Sweep(context.Background())
	if got := ledger.cases[1].Status; got != models.StatusExpired {
		t.Errorf("retried case status = %v, want %v", got, models.StatusExpired)
	}
}

func TestSweepExpiresExactlyOnce(t *testing.T) {
	now := time.Now()
	ledger := &fakeLedger{cases: map[int64]*models.Modlog{
		1: makeCase(1, "u1", models.CaseTypeBan, now.Add(-2*time.Hour), time.Hour),
	}}
	gateway := &fakeGateway{}

	s := newTestSweeper(ledger, gateway, now)
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	if len(gateway.unbans) != 1 {
		t.Errorf("unbans = %v, want exactly one", gateway.unbans)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ledger := &fakeLedger{cases: map[int64]*models.Modlog{}}
	s := New(ledger, &fakeGateway{})
	s.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancel")
	}
}
