package memory

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("u1")
	if session == nil {
		t.Fatalf("expected session")
	}
	if again := store.GetOrCreate("u1"); again != session {
		t.Fatalf("expected the same session instance per user")
	}
	if _, ok := store.Get("u1"); !ok {
		t.Fatalf("expected session present")
	}

	store.Delete("u1")
	if _, ok := store.Get("u1"); ok {
		t.Fatalf("expected session removed")
	}
}
