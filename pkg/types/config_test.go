package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "zero config valid", config: Config{}},
		{
			name:   "full config valid",
			config: Config{FixturesDir: "/tmp/fixtures", LatencyScale: 1.0, User: User{ID: 1, Name: "Dr. Sarah Johnson", Role: RoleSupervisor, Avatar: "SJ"}},
		},
		{
			name:    "negative latency scale",
			config:  Config{LatencyScale: -0.5},
			wantErr: ErrLatencyScaleNegative,
		},
		{
			name:    "unknown user role",
			config:  Config{User: User{Role: "admin"}},
			wantErr: ErrUserRoleUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
