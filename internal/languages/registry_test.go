package languages_test

import (
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/JaimeStill/polyglot/internal/languages"
)

func newRegistry() languages.System {
	return languages.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListSortedByName(t *testing.T) {
	list := newRegistry().List()
	if len(list) == 0 {
		t.Fatal("expected a non-empty registry")
	}

	sorted := sort.SliceIsSorted(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	if !sorted {
		t.Error("expected languages sorted by display name")
	}
}

func TestFind(t *testing.T) {
	sys := newRegistry()

	l, err := sys.Find("fr")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if l.Name != "French" {
		t.Errorf("expected French, got %q", l.Name)
	}

	t.Run("case insensitive", func(t *testing.T) {
		if _, err := sys.Find("FR"); err != nil {
			t.Errorf("Find error: %v", err)
		}
	})

	t.Run("regional variant falls back to base", func(t *testing.T) {
		l, err := sys.Find("fr-CA")
		if err != nil {
			t.Fatalf("Find error: %v", err)
		}
		if l.Name != "French" {
			t.Errorf("expected French, got %q", l.Name)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := sys.Find("not a code"); !errors.Is(err, languages.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestResolve(t *testing.T) {
	sys := newRegistry()

	cases := []struct {
		value string
		want  string
	}{
		{"French", "French"},
		{"french", "French"},
		{"  German  ", "German"},
		{"ja", "Japanese"},
		{"Italiano", "Italian"},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			l, err := sys.Resolve(tc.value)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tc.value, err)
			}
			if l.Name != tc.want {
				t.Errorf("expected %q, got %q", tc.want, l.Name)
			}
		})
	}

	t.Run("empty value", func(t *testing.T) {
		if _, err := sys.Resolve(""); !errors.Is(err, languages.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
