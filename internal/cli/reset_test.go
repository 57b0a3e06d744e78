package cli

import (
	"strings"
	"testing"
)

func TestRunResetDataCommandRequiresConfiguredPassword(t *testing.T) {
	t.Parallel()

	err := RunResetDataCommand("ignored.db", "")
	if err == nil {
		t.Fatal("expected error when ADMIN_PASSWORD is empty")
	}
	if !strings.Contains(err.Error(), "ADMIN_PASSWORD") {
		t.Fatalf("unexpected error: %v", err)
	}
}
