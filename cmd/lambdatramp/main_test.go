package main

import "testing"

func TestRunDemoSucceeds(t *testing.T) {
	if code := run(nil); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunOmegaWithBoundedSteps(t *testing.T) {
	if code := run([]string{"omega", "1000"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if code := run([]string{"frobnicate"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunRejectsInvalidStepCount(t *testing.T) {
	if code := run([]string{"omega", "soon"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
