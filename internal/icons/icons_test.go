package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForApp(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Firefox Web Browser", "\uf269"},
		{"kitty", "\uf489"},
		{"Visual Studio Code", "\U000f0a1e"},
		{"LibreOffice Writer", "\U000f0219"},
		{"Zathura", "\U000f0226"},
		{"Something Else", App},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForApp(tt.name), tt.name)
	}
}

func TestForAppFirstGroupWins(t *testing.T) {
	// "Text Editor" matches the editor group before anything later.
	assert.Equal(t, "\U000f1782", ForApp("Text Editor"))
}

func TestForPowerClass(t *testing.T) {
	assert.Equal(t, Shutdown, ForPowerClass("shutdown-btn"))
	assert.Equal(t, Logout, ForPowerClass("logout-btn"))
	assert.Equal(t, Bullet, ForPowerClass("unknown"))
}
