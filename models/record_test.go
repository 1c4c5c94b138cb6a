package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDistrict(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pune", "pune"},
		{"  PUNE  ", "pune"},
		{"North 24 Parganas", "north 24 parganas"},
		{"\tGaya\n", "gaya"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDistrict(tt.in))
	}
}

func TestRawRecordValidate(t *testing.T) {
	valid := RawRecord{District: "Pune", Enrol18Plus: 10}
	assert.NoError(t, valid.Validate())

	blank := RawRecord{District: "   "}
	assert.Error(t, blank.Validate())

	negative := RawRecord{District: "Pune", Demo517: -1}
	assert.Error(t, negative.Validate())
}
