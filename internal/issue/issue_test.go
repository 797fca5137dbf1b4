// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{NoScriptsConfiguredId, ConfigParseErrorId, ShellNotFoundId} {
		card, ok := Lookup(id)
		if !ok {
			t.Errorf("Lookup(%d) = false, want a card", id)
			continue
		}
		if card.Id() != id {
			t.Errorf("card.Id() = %d, want %d", card.Id(), id)
		}
	}

	if _, ok := Lookup(Id(999)); ok {
		t.Error("Lookup(999) = true, want miss")
	}
}

func TestIssueRender(t *testing.T) {
	t.Parallel()

	card, ok := Lookup(NoScriptsConfiguredId)
	if !ok {
		t.Fatal("card not found")
	}
	out, err := card.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "mcl init") {
		t.Errorf("rendered card does not mention mcl init: %q", out)
	}
}
