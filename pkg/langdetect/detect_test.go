package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"doctype", "<!DOCTYPE html>\n<html><body></body></html>", true},
		{"doctype lowercase", "<!doctype html><p>x</p>", true},
		{"html root with leading whitespace", "\n\n  <html lang=\"en\"><head></head></html>", true},
		{"empty", "", false},
		{"plain text", "just some notes\nnothing markup about it\n", false},
		{"go source", "package main\n\nfunc main() {\n\tprintln(1)\n}\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHTML([]byte(tt.content)))
		})
	}
}
