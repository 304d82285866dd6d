package main

import (
	"testing"
	"time"
)

func TestListenAddr(t *testing.T) {
	if got := listenAddr(""); got != ":8080" {
		t.Fatalf("expected default port 8080, got %s", got)
	}

	if got := listenAddr("6000"); got != ":6000" {
		t.Fatalf("expected overridden port 6000, got %s", got)
	}
}

func TestShutdownTimeout(t *testing.T) {
	if got := shutdownTimeout(0); got != 30*time.Second {
		t.Fatalf("expected 30s fallback, got %s", got)
	}

	if got := shutdownTimeout(5 * time.Second); got != 5*time.Second {
		t.Fatalf("expected configured timeout, got %s", got)
	}
}
