package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Between(t *testing.T) {
	tests := []struct {
		id, start, end uint64
		want           bool
	}{
		{id: 5, start: 3, end: 12, want: true},
		{id: 12, start: 3, end: 12, want: true},
		{id: 3, start: 3, end: 12, want: false},
		{id: 13, start: 3, end: 12, want: false},
		{id: 63, start: 50, end: 5, want: true},
		{id: 0, start: 50, end: 5, want: true},
		{id: 5, start: 50, end: 5, want: true},
		{id: 20, start: 50, end: 5, want: false},
		{id: 50, start: 50, end: 5, want: false},
		{id: 7, start: 7, end: 7, want: true},
		{id: 30, start: 7, end: 7, want: true},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, Between(tt.id, tt.start, tt.end), "Between(%d, %d, %d)", tt.id, tt.start, tt.end)
	}
}

func Test_Distance(t *testing.T) {
	assert.Equal(t, uint64(15), Distance(5, 20, 64))
	assert.Equal(t, uint64(19), Distance(50, 5, 64))
	assert.Equal(t, uint64(0), Distance(9, 9, 64))
	assert.Equal(t, uint64(1), Distance(63, 0, 64))
	assert.Equal(t, uint64(0), Distance(1, 2, 0))
}
