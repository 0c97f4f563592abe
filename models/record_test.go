package models

import "testing"

func TestBuildTagIndex(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want string
	}{
		{"nil", nil, ""},
		{"empty strings dropped", []string{" ", ""}, ""},
		{"lowercased and trimmed", []string{" Work ", "Finance"}, ",work,finance,"},
		{"single", []string{"home"}, ",home,"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildTagIndex(tc.tags); got != tc.want {
				t.Fatalf("BuildTagIndex(%v) = %q, want %q", tc.tags, got, tc.want)
			}
		})
	}
}

func TestStatusAndPriorityValidation(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if RecordStatus("DONE").IsValid() {
		t.Fatal("unknown status should be invalid")
	}
	for _, p := range AllPriorities() {
		if !p.IsValid() {
			t.Fatalf("priority %q should be valid", p)
		}
	}
	if RecordPriority("CRITICAL").IsValid() {
		t.Fatal("unknown priority should be invalid")
	}
}
