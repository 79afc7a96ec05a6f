package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HeroArena_Go/internal/domain"
)

func TestGuard_Authorize(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		caller  string
		wantErr bool
	}{
		{"owner allowed", "admin-1", "admin-1", false},
		{"other caller rejected", "admin-1", "player-2", true},
		{"empty caller rejected", "admin-1", "", true},
		{"unconfigured owner rejects all", "", "", true},
		{"prefix is not a match", "admin-1", "admin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGuard(tt.owner).Authorize(tt.caller)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
