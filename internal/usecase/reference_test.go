package usecase

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewPaymentReference(t *testing.T) {
	ref := NewPaymentReference("CP")

	parts := strings.SplitN(ref, "-", 3)
	if len(parts) != 3 {
		t.Fatalf("expected prefix-millis-suffix, got %s", ref)
	}
	if parts[0] != "CP" {
		t.Fatalf("expected CP prefix, got %s", parts[0])
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Fatalf("expected unix millis, got %s", parts[1])
	}
	if len(parts[2]) != 8 || parts[2] != strings.ToUpper(parts[2]) {
		t.Fatalf("expected 8 uppercase hex chars, got %s", parts[2])
	}

	if NewPaymentReference("CP") == ref {
		t.Fatal("references must be unique")
	}
}
