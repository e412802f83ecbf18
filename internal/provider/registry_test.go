package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDesktop(t *testing.T, dir, rel, body string) {
	t.Helper()
	p := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestXDGRegistryEntries(t *testing.T) {
	user := t.TempDir()
	system := t.TempDir()

	writeDesktop(t, user, "firefox.desktop", `[Desktop Entry]
Type=Application
Name=Firefox (user)
Exec=firefox --profile "work" %u
Icon=firefox
`)
	writeDesktop(t, system, "firefox.desktop", `[Desktop Entry]
Type=Application
Name=Firefox
Exec=firefox %u
`)
	writeDesktop(t, system, "kde/konsole.desktop", `# comment
[Desktop Entry]
Type=Application
Name=Konsole
Name[de]=Konsole DE
Exec=konsole
Terminal=true
OnlyShowIn=KDE;
`)
	writeDesktop(t, system, "hidden.desktop", `[Desktop Entry]
Type=Application
Name=Gone
Exec=gone
Hidden=true
`)
	writeDesktop(t, system, "nodisplay.desktop", `[Desktop Entry]
Type=Application
Name=Helper
Exec=helper
NoDisplay=true
`)
	writeDesktop(t, system, "link.desktop", `[Desktop Entry]
Type=Link
Name=Website
URL=https://example.com
`)
	writeDesktop(t, system, "readme.txt", "not a desktop file")

	reg := &XDGRegistry{Dirs: []string{user, system, filepath.Join(system, "missing")}, Desktop: []string{"Hyprland"}}
	entries, err := reg.Entries()
	require.NoError(t, err)

	byID := make(map[string]DesktopEntry)
	for _, e := range entries {
		byID[e.ID] = e
	}
	require.Len(t, byID, 3)

	ff := byID["firefox.desktop"]
	assert.Equal(t, "Firefox (user)", ff.Name)
	assert.Equal(t, `firefox --profile "work" %u`, ff.Exec)
	assert.Equal(t, "firefox", ff.Icon)
	assert.True(t, ff.ShouldShow)

	konsole := byID["kde-konsole.desktop"]
	assert.Equal(t, "Konsole", konsole.Name)
	assert.True(t, konsole.Terminal)
	assert.False(t, konsole.ShouldShow, "restricted to KDE")

	assert.False(t, byID["nodisplay.desktop"].ShouldShow)
}

func TestXDGRegistryShowIn(t *testing.T) {
	dir := t.TempDir()
	writeDesktop(t, dir, "a.desktop", "[Desktop Entry]\nName=A\nExec=a\nOnlyShowIn=GNOME;KDE;\n")
	writeDesktop(t, dir, "b.desktop", "[Desktop Entry]\nName=B\nExec=b\nNotShowIn=kde;\n")

	reg := &XDGRegistry{Dirs: []string{dir}, Desktop: []string{"KDE"}}
	entries, err := reg.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.desktop", entries[0].ID)
	assert.True(t, entries[0].ShouldShow)
	assert.Equal(t, "b.desktop", entries[1].ID)
	assert.False(t, entries[1].ShouldShow)
}
