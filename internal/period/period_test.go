package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 31, 15, 4, 5, 0, time.UTC)

func TestResolve_Presets(t *testing.T) {
	tests := []struct {
		preset    Preset
		wantStart string
		wantEnd   string
	}{
		{Week, "2025-03-24T15:04:05.000Z", "2025-03-31T15:04:05.000Z"},
		{Month, "2025-03-03T15:04:05.000Z", "2025-03-31T15:04:05.000Z"},
		{Year, "2024-03-31T15:04:05.000Z", "2025-03-31T15:04:05.000Z"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r, err := Resolve(tt.preset, "", "", now)
			require.NoError(t, err)
			params := r.Params()
			assert.Equal(t, tt.wantStart, params.Get("startDate"))
			assert.Equal(t, tt.wantEnd, params.Get("endDate"))
		})
	}
}

func TestResolve_AllTime(t *testing.T) {
	for _, p := range []Preset{"", All} {
		r, err := Resolve(p, "", "", now)
		require.NoError(t, err)
		assert.True(t, r.IsAll())
		assert.Empty(t, r.Params())
	}
}

func TestResolve_Custom(t *testing.T) {
	r, err := Resolve(Custom, "2025-01-01", "2025-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", r.Params().Get("startDate"))
	assert.Equal(t, "2025-01-31", r.Params().Get("endDate"))
}

func TestResolve_CustomIncompleteFallsBackToAll(t *testing.T) {
	r, err := Resolve(Custom, "2025-01-01", "", now)
	require.NoError(t, err)
	assert.True(t, r.IsAll())
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve(Custom, "01/01/2025", "2025-01-31", now)
	assert.Error(t, err)

	_, err = Resolve(Custom, "2025-02-01", "2025-01-31", now)
	assert.Error(t, err)

	_, err = Resolve("decade", "", "", now)
	assert.Error(t, err)
	assert.False(t, Preset("decade").Valid())
}
