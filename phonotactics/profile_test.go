package phonotactics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taggedzi/nonwordgen/phonotactics"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile *phonotactics.Profile
		wantErr error
	}{
		{
			name: "valid profile",
			profile: &phonotactics.Profile{
				Onsets: []string{"", "b"},
				Nuclei: []string{"a", "ee"},
				Codas:  []string{"", "n"},
			},
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: phonotactics.ErrNilProfile,
		},
		{
			name: "no onsets",
			profile: &phonotactics.Profile{
				Nuclei: []string{"a"},
				Codas:  []string{""},
			},
			wantErr: phonotactics.ErrEmptyOnsets,
		},
		{
			name: "no nuclei",
			profile: &phonotactics.Profile{
				Onsets: []string{""},
				Codas:  []string{""},
			},
			wantErr: phonotactics.ErrEmptyNuclei,
		},
		{
			name: "no codas",
			profile: &phonotactics.Profile{
				Onsets: []string{""},
				Nuclei: []string{"a"},
			},
			wantErr: phonotactics.ErrEmptyCodas,
		},
		{
			name: "empty string nucleus",
			profile: &phonotactics.Profile{
				Onsets: []string{""},
				Nuclei: []string{"a", ""},
				Codas:  []string{""},
			},
			wantErr: phonotactics.ErrEmptyNucleusEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
