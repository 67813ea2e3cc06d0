package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProfileUpdates(t *testing.T) {
	cases := []struct {
		name    string
		inName  string
		avatar  string
		want    map[string]string
		wantErr bool
	}{
		{"empty payload", "", "", nil, true},
		{"whitespace only", "   ", "  ", nil, true},
		{"name only", "Asha", "", map[string]string{"name": "Asha"}, false},
		{"avatar only", "", "https://cdn.example.com/a.png", map[string]string{"avatar": "https://cdn.example.com/a.png"}, false},
		{"both trimmed", "  Asha  ", " https://cdn.example.com/a.png ", map[string]string{"name": "Asha", "avatar": "https://cdn.example.com/a.png"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updates, err := buildProfileUpdates(tc.inName, tc.avatar)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, updates, len(tc.want))
			for k, v := range tc.want {
				assert.Equal(t, v, updates[k])
			}
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	assert.Error(t, validatePasswordChange("", "newsecret"))
	assert.Error(t, validatePasswordChange("oldsecret", ""))
	assert.Error(t, validatePasswordChange("oldsecret", "short"))
	assert.NoError(t, validatePasswordChange("oldsecret", "newsecret"))
}
