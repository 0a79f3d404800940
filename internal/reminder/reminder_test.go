package reminder

import (
	"testing"
	"time"
)

func TestPlan(t *testing.T) {
	morning := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		daysRemaining int
		now           time.Time
		limit         int
		wantCount     int
		wantFirst     time.Time
	}{
		{
			name:          "today still ahead",
			daysRemaining: 5,
			now:           morning,
			limit:         64,
			wantCount:     6,
			wantFirst:     time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:          "today already passed",
			daysRemaining: 5,
			now:           night,
			limit:         64,
			wantCount:     5,
			wantFirst:     time.Date(2026, 6, 2, 20, 0, 0, 0, time.UTC),
		},
		{
			name:          "exactly at the reminder time",
			daysRemaining: 5,
			now:           time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
			limit:         64,
			wantCount:     6,
			wantFirst:     time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:          "capped",
			daysRemaining: 79,
			now:           morning,
			limit:         64,
			wantCount:     64,
			wantFirst:     time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:          "default cap",
			daysRemaining: 79,
			now:           morning,
			limit:         0,
			wantCount:     64,
			wantFirst:     time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:          "nothing left",
			daysRemaining: 0,
			now:           night,
			limit:         64,
			wantCount:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.daysRemaining, "20:00", tt.now, tt.limit)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("len(Plan()) = %d, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if !got[0].At.Equal(tt.wantFirst) {
				t.Errorf("first reminder at %v, want %v", got[0].At, tt.wantFirst)
			}
			for i := 1; i < len(got); i++ {
				if !got[i].At.After(got[i-1].At) {
					t.Errorf("reminders out of order at %d", i)
				}
			}
		})
	}
}

func TestPlan_LastReminderHasNoDaysLeft(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	got, err := Plan(3, "20:00", now, 64)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if last := got[len(got)-1]; last.DaysLeft != 0 || last.Body == "" {
		t.Errorf("last reminder = %+v", last)
	}
}

func TestPlan_InvalidTime(t *testing.T) {
	if _, err := Plan(10, "8pm", time.Now(), 64); err == nil {
		t.Error("expected error for invalid time")
	}
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	plan, _ := Plan(3, "20:00", now, 64)

	if _, ok := Due(plan, time.Date(2026, 6, 2, 20, 0, 30, 0, time.UTC)); !ok {
		t.Error("expected a reminder due at 20:00 on day two")
	}
	if _, ok := Due(plan, time.Date(2026, 6, 2, 20, 1, 0, 0, time.UTC)); ok {
		t.Error("no reminder should be due at 20:01")
	}
}

func TestDue_Midnight(t *testing.T) {
	midnight := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	plan, err := Plan(10, "00:00", midnight, 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	r, ok := Due(plan, midnight.Add(20*time.Second))
	if !ok {
		t.Fatalf("00:00 reminder not due at 00:00, plan = %+v", plan)
	}
	if !r.At.Equal(midnight) || r.DaysLeft != 10 {
		t.Errorf("reminder = %+v, want today's with 10 days left", r)
	}
}
