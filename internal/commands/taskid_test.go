package commands

import (
	"errors"
	"testing"

	"todolist/internal/errs"
)

func TestParseTaskID_Numeric(t *testing.T) {
	id, err := ParseTaskID([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected id 5, got %d", id)
	}
}

func TestParseTaskID_LeadingZeros(t *testing.T) {
	id, err := ParseTaskID([]string{"007"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id 7, got %d", id)
	}
}

func TestParseTaskID_NoArgs(t *testing.T) {
	_, err := ParseTaskID(nil)
	if !errors.Is(err, ErrTaskIDRequired) {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
}

func TestParseTaskID_Invalid(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
	}{
		{[]string{"abc"}, "invalid task id: abc"},
		{[]string{"-1"}, "invalid task id: -1"},
		{[]string{"3x"}, "invalid task id: 3x"},
		{[]string{"٣"}, "invalid task id: ٣"},
		{[]string{"1", "2"}, "unexpected argument: 2"},
		{[]string{"99999999999999999999"}, "task id out of range: 99999999999999999999"},
	}

	for _, tt := range tests {
		_, err := ParseTaskID(tt.args)
		if err == nil {
			t.Errorf("ParseTaskID(%q): expected error", tt.args)
			continue
		}
		if !errs.Is(err, errs.MalformedInput) {
			t.Errorf("ParseTaskID(%q): expected malformed input, got %v", tt.args, err)
		}
		if got := errs.MessageOf(err); got != tt.msg {
			t.Errorf("ParseTaskID(%q): expected %q, got %q", tt.args, tt.msg, got)
		}
	}
}
