package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"app %f":                  "app",
		"app %F":                  "app",
		"firefox %u --new-window": "firefox --new-window",
		"  code   %F ":            "code",
		"gimp-2.10 %U %i %c %k":   "gimp-2.10",
		"https://x.org/a%20b":     "https://x.org/a%20b",
		"https://x.org/%Df":       "https://x.org/%Df",
		"env FOO=%d app":          "env FOO= app",
		"/home/u/notes.txt":       "/home/u/notes.txt",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestStripPlaceholders(t *testing.T) {
	assert.Equal(t, `sh -c "echo  hi"`, StripPlaceholders(` sh -c "echo  hi" %U`))
	assert.Equal(t, "app", StripPlaceholders("app %f"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "app", Key("app %f"))
	assert.Equal(t, "/home/u/x", Key("OPEN_PATH:/home/u/x"))
	assert.Equal(t, "https://example.com", Key(`xdg-open "https://example.com"`))
	assert.Equal(t, "", Key("COPY:4"))
	assert.Equal(t, "", Key("CLIPBOARD_SET:3"))
	assert.Equal(t, "", Key("SHOW_HOTKEYS"))
}

func TestMapPlaceholderVariantsShareCounter(t *testing.T) {
	m := NewMap()
	m.Increment(Key("app %f"))
	m.Increment(Key("app %F"))

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, uint32(2), m.Count("app"))
}

func TestMapRemoveAndEntries(t *testing.T) {
	m := NewMap()
	m.Increment("b")
	m.Increment("a")
	m.Increment("a")
	assert.Equal(t, uint32(0), m.Increment(""))

	assert.Equal(t, []Entry{{Key: "a", Count: 2}, {Key: "b", Count: 1}}, m.Entries())
	assert.True(t, m.Remove("a"))
	assert.False(t, m.Remove("a"))
	assert.Equal(t, uint32(0), m.Count("a"))
}

func TestOverridesLookup(t *testing.T) {
	name := func(s string) Override { return Override{Name: &s} }
	ovr := Overrides{
		"firefox.desktop": name("by id"),
		"foot":            name("by base"),
		"Files":           name("by name"),
	}

	got, ok := ovr.Lookup("firefox.desktop", "Files")
	assert.True(t, ok)
	assert.Equal(t, "by id", *got.Name)

	got, ok = ovr.Lookup("foot.desktop", "Files")
	assert.True(t, ok)
	assert.Equal(t, "by base", *got.Name)

	got, ok = ovr.Lookup("org.gnome.Nautilus.desktop", "Files")
	assert.True(t, ok)
	assert.Equal(t, "by name", *got.Name)

	_, ok = ovr.Lookup("kitty.desktop", "kitty")
	assert.False(t, ok)
}
