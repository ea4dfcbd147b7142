package shift

import (
	"testing"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func flag(b bool) *shared.Flag {
	f := shared.Flag(b)
	return &f
}

func str(s string) *string { return &s }

func TestAssignment_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		status       *string
		isActive     *shared.Flag
		wantEnded    bool
		wantConflict bool
	}{
		{"both active", str("active"), flag(true), false, false},
		{"both ended", str("ended"), flag(false), true, false},
		{"inactive status", str("inactive"), flag(false), true, false},
		{"flag only ended", nil, flag(false), true, false},
		{"status only ended", str("ended"), nil, true, false},
		{"flag says ended, status active", str("active"), flag(false), true, true},
		{"status says ended, flag active", str("ended"), flag(true), true, true},
		{"nothing known", nil, nil, false, false},
		{"blank status", str(""), flag(true), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Assignment{Status: tt.status, IsActive: tt.isActive}
			conflict := a.Resolve()
			assert.Equal(t, tt.wantEnded, a.Ended)
			assert.Equal(t, tt.wantConflict, a.StatusConflict)
			assert.Equal(t, tt.wantConflict, conflict)
		})
	}
}
