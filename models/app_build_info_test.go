package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  string
	}{
		{
			name:    "all set",
			version: "v1.2.0", date: "2026-10-01", commit: "abc123",
			want: "Build version: v1.2.0\nBuild date: 2026-10-01\nBuild commit: abc123\n",
		},
		{
			name: "nothing injected",
			want: "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n",
		},
		{
			name:    "partial",
			version: "v0.1.0",
			want:    "Build version: v0.1.0\nBuild date: N/A\nBuild commit: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.want, info.String())
		})
	}
}

func TestAppBuildInfo_Accessors(t *testing.T) {
	info := NewAppBuildInfo("v1", "", "deadbeef")

	assert.Equal(t, "v1", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
}
