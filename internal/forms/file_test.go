package forms

import (
	"bytes"
	"testing"
)

func TestFilePayloadStripsDataURLPrefix(t *testing.T) {
	got := FilePayload("data:application/pdf;base64,c29tZSBmaWxl")
	if got != "c29tZSBmaWxl" {
		t.Fatalf("payload not stripped after first comma, got %q", got)
	}
}

func TestFilePayloadEmptySelection(t *testing.T) {
	if got := FilePayload(""); got != "" {
		t.Fatalf("empty selection must yield empty string, got %q", got)
	}
}

func TestFilePayloadWithoutComma(t *testing.T) {
	if got := FilePayload("c29tZSBmaWxl"); got != "c29tZSBmaWxl" {
		t.Fatalf("bare payload should pass through, got %q", got)
	}
}

func TestFilePayloadKeepsLaterCommas(t *testing.T) {
	// only the first comma delimits the prefix
	got := FilePayload("data:text/plain;base64,abc,def")
	if got != "abc,def" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeFilePayload(t *testing.T) {
	raw, err := DecodeFilePayload("c29tZSBmaWxl")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(raw, []byte("some file")) {
		t.Fatalf("decoded %q", raw)
	}

	if _, err := DecodeFilePayload("not base64!!"); err == nil {
		t.Fatalf("invalid base64 must error")
	}
	if _, err := DecodeFilePayload(""); err == nil {
		t.Fatalf("empty payload must error")
	}
}
