package ident

import (
	"strconv"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Carroceria Graneleira", want: "carroceria-graneleira"},
		{in: "Tanque de Combustível 15.000 L", want: "tanque-de-combustivel-15-000-l"},
		{in: "  --Ação & Reação--  ", want: "acao-reacao"},
		{in: "ÇÃÕ", want: "cao"},
		{in: "___", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	prefix := strconv.FormatInt(now.UnixMilli(), 36)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID(now)
		if len(id) != len(prefix)+idSuffixLen {
			t.Fatalf("unexpected id length: %q", id)
		}
		if id[:len(prefix)] != prefix {
			t.Fatalf("expected timestamp prefix %q, got %q", prefix, id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNow(t *testing.T) {
	n := Now()
	if n.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", n.Location())
	}
	if n.Nanosecond()%int(time.Millisecond) != 0 {
		t.Fatalf("expected millisecond precision, got %v", n)
	}
}
