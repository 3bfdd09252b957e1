package utils

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string: got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("truncated: got %q", got)
	}
	if got := Truncate("hello", 0); got != "hello" {
		t.Errorf("zero maxLen: got %q", got)
	}
	if got := Truncate("hello", -1); got != "hello" {
		t.Errorf("negative maxLen: got %q", got)
	}
}
