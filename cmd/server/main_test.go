package main

import (
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2/log"
)

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" http://a.test, ,http://b.test ")
	if want := []string{"http://a.test", "http://b.test"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := splitOrigins(""); len(got) != 0 {
		t.Fatalf("empty input gave %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.LevelDebug,
		"WARN":    log.LevelWarn,
		"error":   log.LevelError,
		"info":    log.LevelInfo,
		"verbose": log.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("%q: got %v, want %v", in, got, want)
		}
	}
}

func TestGetenvUint(t *testing.T) {
	t.Setenv("CHESS_TEST_SEED", "42")
	if got := getenvUint("CHESS_TEST_SEED", 1); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("CHESS_TEST_SEED", "nope")
	if got := getenvUint("CHESS_TEST_SEED", 1); got != 1 {
		t.Fatalf("bad value should fall back, got %d", got)
	}
}
