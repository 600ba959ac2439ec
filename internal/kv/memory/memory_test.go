package memory

import (
	"context"
	"testing"
)

func TestStoreSetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "spendings"); ok || err != nil {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "spendings", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "spendings")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("unexpected get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := s.Remove(ctx, "spendings"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "spendings"); ok {
		t.Fatal("expected key removed")
	}
	if s.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", s.Writes())
	}
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewWith(map[string]string{"categories": "[]"})
	if _, _, err := s.Get(ctx, "categories"); err == nil {
		t.Fatal("expected context error")
	}
	if err := s.Set(ctx, "categories", "x"); err == nil {
		t.Fatal("expected context error")
	}
}
