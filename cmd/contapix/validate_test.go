package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunValidationOK(t *testing.T) {
	var out bytes.Buffer
	if err := runValidation(&out); err != nil {
		t.Fatalf("runValidation: %v\noutput:\n%s", err, out.String())
	}
	got := out.String()
	if !strings.Contains(got, "transaction added") {
		t.Fatalf("output missing transaction log:\n%s", got)
	}
	if !strings.Contains(got, "balance=39849.5") {
		t.Fatalf("output missing resulting balance:\n%s", got)
	}
}
