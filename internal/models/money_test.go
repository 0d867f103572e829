package models

import (
	"encoding/json"
	"testing"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in      string
		want    Cents
		wantErr bool
	}{
		{"150", 15000, false},
		{"150.5", 15050, false},
		{"150.00", 15000, false},
		{"0.75", 75, false},
		{"-12.34", -1234, false},
		{" 375.00 ", 37500, false},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCents(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCents(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCentsString(t *testing.T) {
	if got := Cents(37500).String(); got != "375.00" {
		t.Errorf("got %q, want 375.00", got)
	}
	if got := Cents(5).String(); got != "0.05" {
		t.Errorf("got %q, want 0.05", got)
	}
	if got := Cents(-1234).String(); got != "-12.34" {
		t.Errorf("got %q, want -12.34", got)
	}
}

func TestCentsJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Cents(15000))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"150.00"` {
		t.Errorf("marshal: got %s", out)
	}

	var fromString Cents
	if err := json.Unmarshal([]byte(`"75.50"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString != 7550 {
		t.Errorf("unmarshal string: got %d", fromString)
	}

	var fromNumber Cents
	if err := json.Unmarshal([]byte(`75.5`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber != 7550 {
		t.Errorf("unmarshal number: got %d", fromNumber)
	}
}
