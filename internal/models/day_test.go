package models

import (
	"errors"
	"testing"
	"time"
)

func fullDay(d *Day) {
	d.DrankWater = true
	d.WorkedOut = true
	d.FollowedDiet = true
	d.UnderDrinkLimit = true
	d.Read = true
	d.ColdShower = true
	d.Meditated = true
	d.SocialMediaLimit = true
	d.SetCriticalTaskOne("ship the release")
	d.SetCriticalTaskTwo("call mom")
	_ = d.SetTask(TaskCriticalTasks, true)
}

func TestDay_CompletedTasks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(d *Day)
		want  int
	}{
		{
			name:  "empty day",
			setup: func(d *Day) {},
			want:  0,
		},
		{
			name: "simple flags only",
			setup: func(d *Day) {
				d.DrankWater = true
				d.Read = true
				d.Meditated = true
			},
			want: 3,
		},
		{
			name: "one critical task does not count",
			setup: func(d *Day) {
				d.SetCriticalTaskOne("a")
				_ = d.ToggleCriticalTaskOne()
			},
			want: 0,
		},
		{
			name: "both critical tasks count once",
			setup: func(d *Day) {
				d.SetCriticalTaskOne("a")
				d.SetCriticalTaskTwo("b")
				_ = d.ToggleCriticalTasks()
			},
			want: 1,
		},
		{
			name:  "all tasks",
			setup: fullDay,
			want:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Day{}
			tt.setup(d)
			if got := d.CompletedTasks(); got != tt.want {
				t.Errorf("CompletedTasks() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDay_CompletedTasksMonotonic(t *testing.T) {
	d := &Day{}
	prev := d.CompletedTasks()
	for _, task := range Tasks {
		if task.Kind == TaskCriticalTasks {
			d.SetCriticalTaskOne("a")
			d.SetCriticalTaskTwo("b")
		}
		if err := d.SetTask(task.Kind, true); err != nil {
			t.Fatalf("SetTask(%s) error = %v", task.Kind, err)
		}
		got := d.CompletedTasks()
		if got < prev {
			t.Fatalf("CompletedTasks decreased from %d to %d after %s", prev, got, task.Kind)
		}
		prev = got
	}
	if !d.AllTasksCompleted() {
		t.Errorf("AllTasksCompleted() = false after setting every task")
	}
}

func TestDay_ClearingCriticalTextUnchecks(t *testing.T) {
	d := &Day{}
	d.SetCriticalTaskOne("write")
	d.SetCriticalTaskTwo("run")
	if err := d.ToggleCriticalTaskOne(); err != nil {
		t.Fatalf("ToggleCriticalTaskOne() error = %v", err)
	}
	if err := d.ToggleCriticalTaskTwo(); err != nil {
		t.Fatalf("ToggleCriticalTaskTwo() error = %v", err)
	}

	d.SetCriticalTaskOne("")
	if d.DidCriticalTaskOne() {
		t.Errorf("DidCriticalTaskOne() = true after clearing text")
	}
	if !d.DidCriticalTaskTwo() {
		t.Errorf("DidCriticalTaskTwo() = false, clearing task one must not touch task two")
	}

	d.SetCriticalTaskTwo("")
	if d.DidCriticalTaskTwo() {
		t.Errorf("DidCriticalTaskTwo() = true after clearing text")
	}
}

func TestDay_ToggleCriticalTasks(t *testing.T) {
	t.Run("rejected until both texts set", func(t *testing.T) {
		d := &Day{}
		d.SetCriticalTaskOne("only one")
		if err := d.ToggleCriticalTasks(); !errors.Is(err, ErrCriticalTasksNotReady) {
			t.Fatalf("ToggleCriticalTasks() error = %v, want ErrCriticalTasksNotReady", err)
		}
		if d.DidCriticalTaskOne() || d.DidCriticalTaskTwo() {
			t.Errorf("rejected toggle changed state")
		}
	})

	t.Run("flips both to the same value", func(t *testing.T) {
		d := &Day{}
		d.SetCriticalTaskOne("a")
		d.SetCriticalTaskTwo("b")
		_ = d.ToggleCriticalTaskOne()

		if err := d.ToggleCriticalTasks(); err != nil {
			t.Fatalf("ToggleCriticalTasks() error = %v", err)
		}
		if !d.DidCriticalTaskOne() || !d.DidCriticalTaskTwo() {
			t.Fatalf("expected both checked after toggling a partial pair")
		}
		if err := d.ToggleCriticalTasks(); err != nil {
			t.Fatalf("ToggleCriticalTasks() error = %v", err)
		}
		if d.DidCriticalTaskOne() || d.DidCriticalTaskTwo() {
			t.Errorf("expected both unchecked after second toggle")
		}
	})

	t.Run("individual toggle needs its own text", func(t *testing.T) {
		d := &Day{}
		d.SetCriticalTaskOne("a")
		if err := d.ToggleCriticalTaskTwo(); !errors.Is(err, ErrCriticalTasksNotReady) {
			t.Errorf("ToggleCriticalTaskTwo() error = %v, want ErrCriticalTasksNotReady", err)
		}
		if err := d.ToggleCriticalTaskOne(); err != nil {
			t.Errorf("ToggleCriticalTaskOne() error = %v", err)
		}
	})
}

func TestDay_SetTask(t *testing.T) {
	d := &Day{}
	if err := d.SetTask(TaskCriticalTasks, true); !errors.Is(err, ErrCriticalTasksNotReady) {
		t.Errorf("SetTask(critical) error = %v, want ErrCriticalTasksNotReady", err)
	}
	if err := d.SetTask(TaskKind("nap"), true); !errors.Is(err, ErrUnknownTask) {
		t.Errorf("SetTask(nap) error = %v, want ErrUnknownTask", err)
	}
	if err := d.SetTask(TaskColdShower, true); err != nil {
		t.Fatalf("SetTask(cold_shower) error = %v", err)
	}
	done, err := d.Task(TaskColdShower)
	if err != nil || !done {
		t.Errorf("Task(cold_shower) = %v, %v; want true, nil", done, err)
	}

	d.SetCriticalTaskOne("a")
	d.SetCriticalTaskTwo("b")
	for i := 0; i < 2; i++ {
		if err := d.SetTask(TaskCriticalTasks, true); err != nil {
			t.Fatalf("SetTask(critical) error = %v", err)
		}
	}
	if !d.DidCriticalTasks() {
		t.Errorf("setting critical twice must leave it checked")
	}

	// Clearing works even after a text was removed.
	d.SetCriticalTaskOne("")
	if err := d.SetTask(TaskCriticalTasks, false); err != nil {
		t.Fatalf("SetTask(critical, false) error = %v", err)
	}
	if d.DidCriticalTaskOne() || d.DidCriticalTaskTwo() {
		t.Errorf("SetTask(critical, false) left a task checked")
	}
}

func TestDay_RestoreCriticalTasks(t *testing.T) {
	d := &Day{}
	d.RestoreCriticalTasks("", "b", true, true)
	if d.DidCriticalTaskOne() {
		t.Errorf("restored a checked task one with empty text")
	}
	if !d.DidCriticalTaskTwo() {
		t.Errorf("DidCriticalTaskTwo() = false, want true")
	}
}

func TestDay_IsAccessible(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	c, err := NewChallengeStartingOn(now.AddDate(0, 0, -4), now)
	if err != nil {
		t.Fatalf("NewChallengeStartingOn() error = %v", err)
	}

	tests := []struct {
		name  string
		day   int
		setup func(c *Challenge)
		want  bool
	}{
		{name: "first day", day: 1, want: true},
		{name: "today", day: 5, want: true},
		{name: "tomorrow", day: 6, want: false},
		{
			name: "after quit date",
			day:  4,
			setup: func(c *Challenge) {
				c.Quit(now.AddDate(0, 0, -2))
			},
			want: false,
		},
		{
			name: "on quit date",
			day:  3,
			setup: func(c *Challenge) {
				c.Quit(now.AddDate(0, 0, -2))
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := NewChallengeStartingOn(now.AddDate(0, 0, -4), now)
			if tt.setup != nil {
				tt.setup(c)
			}
			if got := c.Day(tt.day).IsAccessible(now); got != tt.want {
				t.Errorf("IsAccessible() = %v, want %v", got, tt.want)
			}
		})
	}

	// Long after the window closes, the last day stays accessible and
	// nothing past it exists.
	late := c.EndDate.AddDate(0, 0, 10)
	if !c.Day(80).IsAccessible(late) {
		t.Errorf("day 80 should be accessible after the challenge ends")
	}
	detached := &Day{Date: c.EndDate.AddDate(0, 0, 1)}
	detached.challenge = c
	if detached.IsAccessible(late) {
		t.Errorf("day after end date should not be accessible")
	}
}

func TestDay_CompletionTier(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c := NewChallenge(now)

	if got := c.Day(2).CompletionTier(now); got != TierInactive {
		t.Errorf("future day tier = %v, want TierInactive", got)
	}

	tests := []struct {
		completed int
		want      Tier
	}{
		{0, Tier1},
		{1, Tier1},
		{2, Tier2},
		{4, Tier3},
		{6, Tier4},
		{8, Tier5},
		{9, Tier6},
	}
	flags := []*bool{}
	d := c.Day(1)
	flags = append(flags, &d.DrankWater, &d.WorkedOut, &d.FollowedDiet, &d.UnderDrinkLimit,
		&d.Read, &d.ColdShower, &d.Meditated, &d.SocialMediaLimit)

	for _, tt := range tests {
		*d = Day{Number: d.Number, Date: d.Date, challenge: c}
		for i := 0; i < tt.completed && i < len(flags); i++ {
			*flags[i] = true
		}
		if tt.completed == 9 {
			d.SetCriticalTaskOne("a")
			d.SetCriticalTaskTwo("b")
			_ = d.ToggleCriticalTasks()
		}
		if got := d.CompletionTier(now); got != tt.want {
			t.Errorf("CompletionTier() with %d tasks = %v, want %v", tt.completed, got, tt.want)
		}
	}
}

func TestTierForFraction(t *testing.T) {
	tests := []struct {
		fraction float64
		want     Tier
	}{
		{0, Tier1},
		{0.19, Tier1},
		{0.2, Tier2},
		{0.4, Tier3},
		{0.6, Tier4},
		{0.8, Tier5},
		{0.98, Tier5},
		{0.99, Tier6},
		{1, Tier6},
	}
	for _, tt := range tests {
		if got := TierForFraction(tt.fraction); got != tt.want {
			t.Errorf("TierForFraction(%v) = %v, want %v", tt.fraction, got, tt.want)
		}
	}
	if c := TierInactive.Color(); c.Name != ColorGray || c.Opacity != 0.3 {
		t.Errorf("TierInactive.Color() = %+v", c)
	}
	if c := Tier6.Color(); c.Name != ColorRed || c.Opacity != 0.8 {
		t.Errorf("Tier6.Color() = %+v", c)
	}
}

func TestParseTaskKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TaskKind
		wantErr bool
	}{
		{in: "water", want: TaskWater},
		{in: "Cold-Shower", want: TaskColdShower},
		{in: " social ", want: TaskSocialMedia},
		{in: "critical", want: TaskCriticalTasks},
		{in: "nap", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTaskKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTaskKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTaskKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if len(Tasks) != 9 {
		t.Errorf("len(Tasks) = %d, want 9", len(Tasks))
	}
}
