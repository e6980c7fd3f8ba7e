package registry

import (
	"strings"
	"testing"
)

type fixed struct{ v float64 }

func (fixed) ID() string                      { return "fixed" }
func (fixed) Title() string                   { return "Fixed velocity" }
func (f fixed) Velocity(_, _ float64) float64 { return f.v }

func TestRegisterCreateList(t *testing.T) {
	Register("test-fixed", func(speed float64) Controller { return fixed{v: speed} })

	if !Exists("test-fixed") {
		t.Fatal("Exists() should report a registered controller")
	}

	c, err := Create("test-fixed", 2.5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := c.Velocity(0, 0); got != 2.5 {
		t.Errorf("Velocity() = %g, expected 2.5", got)
	}

	found := false
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		if info.ID == "test-fixed" {
			found = true
			if info.Title != "Fixed velocity" {
				t.Errorf("Title = %q, expected %q", info.Title, "Fixed velocity")
			}
		}
	}
	if !found {
		t.Error("List() should include the registered controller")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-opponent", 1)
	if err == nil || !strings.Contains(err.Error(), "no-such-opponent") {
		t.Errorf("Create() error = %v, expected unknown opponent error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func(speed float64) Controller { return fixed{v: speed} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func(speed float64) Controller { return fixed{v: speed} })
}
