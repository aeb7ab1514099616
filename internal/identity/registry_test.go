package identity

import (
	"testing"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	r := NewRegistry(seed.Users())

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid", username: "acxell", password: "1234"},
		{name: "other valid user", username: "renato", password: "5678"},
		{name: "wrong password", username: "acxell", password: "4321", wantErr: true},
		{name: "password of another user", username: "daniel", password: "1234", wantErr: true},
		{name: "unknown user", username: "mallory", password: "1234", wantErr: true},
		{name: "empty", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := r.Authenticate(tc.username, tc.password)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrorUnauthorized)
				assert.Empty(t, u.Username)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.username, u.Username)
		})
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry(seed.Users())

	u, err := r.Lookup("daniel")
	require.NoError(t, err)
	assert.Equal(t, "daniel", u.Name())

	_, err = r.Lookup("ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
