package logger

import "testing"

func TestGetFallsBackToDevelopment(t *testing.T) {
	log := Get()
	if log == nil {
		t.Fatal("expected a logger without explicit Init")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Init("development")
	first := Get()
	Init("production")
	if Get() != first {
		t.Error("expected repeated Init calls to keep the first logger")
	}
}
