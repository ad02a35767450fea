package server

import "testing"

func TestNew_WithoutJournal(t *testing.T) {
	s, cleanup, err := New(Config{DisableJournal: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cleanup()

	if s == nil {
		t.Fatal("expected a server instance")
	}
}

func TestNew_JournalInTempDir(t *testing.T) {
	s, cleanup, err := New(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cleanup()

	if s == nil {
		t.Fatal("expected a server instance")
	}
}

func TestCleanup_IsSafeToCallTwice(t *testing.T) {
	_, cleanup, err := New(Config{DisableJournal: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cleanup()
	cleanup()
}
