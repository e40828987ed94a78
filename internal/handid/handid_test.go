package handid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-ranker/internal/randutil"
)

func TestGenerate(t *testing.T) {
	id := NewGenerator(nil, nil).Generate()
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
}

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator(nil, nil)
	ids := make(map[string]bool)
	for range 100 {
		id := gen.Generate()
		assert.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, randutil.New(1))

	var ids []string
	for range 10 {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond)
	}
	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "IDs not sorted: %s >= %s", ids[i-1], ids[i])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	a := NewGenerator(clock, randutil.New(3)).Generate()
	b := NewGenerator(clock, randutil.New(3)).Generate()
	assert.Equal(t, a, b)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01arz3ndektsv4rrffq69g5fav", false},
		{"too short", "01arz3nd", true},
		{"too long", "01arz3ndektsv4rrffq69g5fav0", true},
		{"first character too large", "z1arz3ndektsv4rrffq69g5fav", true},
		{"excluded letter", "01arz3ndektsv4rrffq69g5fai", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
