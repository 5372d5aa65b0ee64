package models

import (
	"testing"
	"time"
)

func TestNewModlogStatusInvariant(t *testing.T) {
	tests := []struct {
		caseType CaseType
		expected CaseStatus
	}{
		{CaseTypeMute, StatusActive},
		{CaseTypeBan, StatusActive},
		{CaseTypeChannelBan, StatusActive},
		{CaseTypeWarn, StatusNone},
		{CaseTypeKick, StatusNone},
		{CaseTypeUnban, StatusNone},
		{CaseTypeUnmute, StatusNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.caseType), func(t *testing.T) {
			m := NewModlog("u1", "m1", "", tt.caseType, "testing", time.Now(), 0)
			if m.Status != tt.expected {
				t.Errorf("Status = %v, want %v", m.Status, tt.expected)
			}
			if m.InForce() != tt.caseType.Enduring() {
				t.Errorf("InForce() = %v, want %v", m.InForce(), tt.caseType.Enduring())
			}
		})
	}
}

func TestNewModlogDefaultReason(t *testing.T) {
	m := NewModlog("u1", "m1", "", CaseTypeWarn, "", time.Now(), 0)
	if m.Reason != DefaultReason {
		t.Errorf("Reason = %v, want %v", m.Reason, DefaultReason)
	}

	m = NewModlog("u1", "m1", "", CaseTypeWarn, "spamming", time.Now(), 0)
	if m.Reason != "spamming" {
		t.Errorf("Reason = %v, want %v", m.Reason, "spamming")
	}
}

func TestModlogUntil(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// A 7 day ban persists 604800 seconds and lapses 7 days after creation
	m := NewModlog("u1", "m1", "", CaseTypeBan, "", created, 7*24*time.Hour)
	if m.Duration != 604800 {
		t.Errorf("Duration = %v, want %v", m.Duration, 604800)
	}

	want := created.Add(7 * 24 * time.Hour)
	if !m.Until().Equal(want) {
		t.Errorf("Until() = %v, want %v", m.Until(), want)
	}
}

func TestModlogIsExpired(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewModlog("u1", "m1", "", CaseTypeBan, "", created, 7*24*time.Hour)

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"just created", created, false},
		{"one day in", created.Add(24 * time.Hour), false},
		{"at the boundary", created.Add(7 * 24 * time.Hour), false},
		{"one second past", created.Add(7*24*time.Hour + time.Second), true},
		{"eight days later", created.Add(8 * 24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsExpired(tt.now); got != tt.expected {
				t.Errorf("IsExpired(%v) = %v, want %v", tt.now, got, tt.expected)
			}
		})
	}
}

func TestModlogPermanent(t *testing.T) {
	created := time.Now()

	perm := NewModlog("u1", "m1", "", CaseTypeBan, "", created, 0)
	if !perm.Permanent() {
		t.Error("zero duration should mean permanent")
	}
	if perm.IsExpired(created.Add(100 * 365 * 24 * time.Hour)) {
		t.Error("permanent sanctions never expire")
	}
	if !perm.Until().IsZero() {
		t.Errorf("Until() = %v, want zero time", perm.Until())
	}

	// Durations at or beyond the permanent threshold behave the same
	huge := Modlog{Type: CaseTypeBan, Created: created.Unix(), Duration: PermDuration}
	if !huge.Permanent() {
		t.Error("PermDuration seconds should mean permanent")
	}
}

func TestCaseTypeEnduring(t *testing.T) {
	enduring := []CaseType{CaseTypeMute, CaseTypeBan, CaseTypeChannelBan}
	transient := []CaseType{CaseTypeWarn, CaseTypeKick, CaseTypeUnban, CaseTypeUnmute}

	for _, ct := range enduring {
		if !ct.Enduring() {
			t.Errorf("%s should be enduring", ct)
		}
	}
	for _, ct := range transient {
		if ct.Enduring() {
			t.Errorf("%s should not be enduring", ct)
		}
	}
}
