package venuename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hyphenated slug", input: "revolver-upstairs", want: "Revolver Upstairs"},
		{name: "underscored slug", input: "ms_collins", want: "Ms Collins"},
		{name: "single word", input: "pawn", want: "Pawn"},
		{name: "already capitalized", input: "Baroq-House", want: "Baroq House"},
		{name: "collapses repeated separators", input: "the--emerson", want: "The Emerson"},
		{name: "multi-byte first letter", input: "élan-bar", want: "Élan Bar"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}
