package config

import "testing"

func TestCompileConditions(t *testing.T) {
	skip := true
	conditions, err := CompileConditions([]DefaultCondition{
		{If: "index == 0", Layout: "TITLE_SLIDE"},
		{If: "hasImage && contentLength > 500", Layout: "IMAGE_RIGHT"},
		{If: "bullets > 12", Skip: &skip},
		{If: `title.startsWith("Appendix")`, Skip: &skip},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(conditions) != 4 {
		t.Fatalf("conditions = %d, want 4", len(conditions))
	}

	tests := []struct {
		name      string
		condition *Condition
		vars      Vars
		want      bool
	}{
		{"first slide matches", conditions[0], Vars{Index: 0}, true},
		{"later slide does not", conditions[0], Vars{Index: 3}, false},
		{"image with long content", conditions[1], Vars{HasImage: true, ContentLength: 600}, true},
		{"image with short content", conditions[1], Vars{HasImage: true, ContentLength: 100}, false},
		{"no image", conditions[1], Vars{ContentLength: 600}, false},
		{"bullet overflow", conditions[2], Vars{Bullets: 13}, true},
		{"title prefix", conditions[3], Vars{Title: "Appendix A"}, true},
		{"title mismatch", conditions[3], Vars{Title: "Summary"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.condition.Match(tt.vars)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}

	if conditions[0].Layout() != "TITLE_SLIDE" {
		t.Errorf("Layout() = %q, want %q", conditions[0].Layout(), "TITLE_SLIDE")
	}
	if conditions[0].Skip() {
		t.Error("Skip() = true, want false")
	}
	if !conditions[2].Skip() {
		t.Error("Skip() = false, want true")
	}
}

func TestCompileConditionsEmpty(t *testing.T) {
	conditions, err := CompileConditions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if conditions != nil {
		t.Errorf("conditions = %v, want nil", conditions)
	}
}

func TestCompileConditionsInvalid(t *testing.T) {
	tests := []string{
		"index ==",
		"unknownVar == 1",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			if _, err := CompileConditions([]DefaultCondition{{If: expr}}); err == nil {
				t.Error("CompileConditions() error = nil, want error")
			}
		})
	}
}
