package config

import "testing"

func TestCustomBoundsOrdering(t *testing.T) {
	if CustomWorkMinMinutes > CustomWorkMaxMinutes {
		t.Fatalf("work bounds inverted: [%d, %d]", CustomWorkMinMinutes, CustomWorkMaxMinutes)
	}
	if CustomBreakMinMinutes > CustomBreakMaxMinutes {
		t.Fatalf("break bounds inverted: [%d, %d]", CustomBreakMinMinutes, CustomBreakMaxMinutes)
	}
	if CustomBreakMinMinutes < 1 {
		t.Fatalf("break lower bound must be at least one minute, got %d", CustomBreakMinMinutes)
	}
}

func TestDefaultPairWithinBounds(t *testing.T) {
	if DefaultWorkMinutes > CustomWorkMaxMinutes {
		t.Fatalf("default work %d exceeds custom max %d", DefaultWorkMinutes, CustomWorkMaxMinutes)
	}
	if DefaultBreakMinutes > CustomBreakMaxMinutes {
		t.Fatalf("default break %d exceeds custom max %d", DefaultBreakMinutes, CustomBreakMaxMinutes)
	}
}
