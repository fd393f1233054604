package main

import "testing"

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{args: nil, want: false},
		{args: []string{"--version"}, want: true},
		{args: []string{"-v"}, want: true},
		{args: []string{"--verbose"}, want: false},
		{args: []string{"foo", "-v"}, want: true},
	}
	for _, tt := range tests {
		if got := hasVersionFlag(tt.args); got != tt.want {
			t.Errorf("hasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
