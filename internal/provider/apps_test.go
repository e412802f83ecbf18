package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/icons"
)

type staticRegistry struct {
	entries []DesktopEntry
	err     error
}

func (r staticRegistry) Entries() ([]DesktopEntry, error) { return r.entries, r.err }

func names(cs []candidate.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestAppIndexLoadAppliesOverrides(t *testing.T) {
	reg := staticRegistry{entries: []DesktopEntry{
		{ID: "firefox.desktop", Name: "Firefox", Exec: "firefox %u", Icon: "firefox", ShouldShow: true},
		{ID: "foot.desktop", Name: "Foot", Exec: "foot", Terminal: false, ShouldShow: true},
		{ID: "htop.desktop", Name: "htop", Exec: "htop", Terminal: true, ShouldShow: false},
		{ID: "org.gnome.Nautilus.desktop", Name: "Files", Exec: "nautilus", ShouldShow: true},
	}}
	hidden := true
	shown := false
	ovr := history.Overrides{
		"firefox.desktop": {Name: history.StringPtr("Browser"), Icon: history.StringPtr("B")},
		"foot":            {Hidden: &hidden, SystemIcon: history.StringPtr("utilities-terminal")},
		"htop.desktop":    {Hidden: &shown},
	}
	idx := NewAppIndex(reg, nil)

	apps := idx.Load(LoadOptions{Overrides: ovr})
	require.Len(t, apps, 3)
	assert.Equal(t, []string{"Browser", "htop", "Files"}, names(Candidates(apps)))

	assert.Equal(t, "B", apps[0].Icon)
	assert.Equal(t, "firefox", apps[0].SystemIcon)
	assert.Equal(t, "firefox %u", apps[0].Action)
	assert.Equal(t, candidate.App, apps[0].Source)
	assert.Equal(t, "firefox.desktop", apps[0].DesktopID)
	assert.True(t, apps[1].Terminal)
	assert.Equal(t, icons.ForApp("Files"), apps[2].Icon)

	hiddenApps := idx.Load(LoadOptions{Overrides: ovr, ShowHidden: true})
	require.Len(t, hiddenApps, 1)
	assert.Equal(t, "Foot", hiddenApps[0].Name)
	assert.Equal(t, "utilities-terminal", hiddenApps[0].SystemIcon)
}

func TestAppIndexLoadRegistryError(t *testing.T) {
	idx := NewAppIndex(staticRegistry{err: errors.New("boom")}, nil)
	assert.Empty(t, idx.Load(LoadOptions{}))
}

func TestMatchOrdering(t *testing.T) {
	apps := []candidate.Candidate{
		{Name: "Firefox", Action: "firefox %u"},
		{Name: "Fire", Action: "fire"},
		{Name: "Calculator", Action: "calc"},
	}
	got := Match(apps, "fire", history.NewMap())
	assert.Equal(t, []string{"Fire", "Firefox"}, names(got))
	assert.Empty(t, Match(apps, "", history.NewMap()))
	assert.Empty(t, Match(apps, "zzz", history.NewMap()))
}

func TestMatchTieBrokenByUsage(t *testing.T) {
	apps := []candidate.Candidate{
		{Name: "Foo Bar", Action: "bar %F"},
		{Name: "Foo Baz", Action: "baz"},
	}
	assert.Equal(t, []string{"Foo Bar", "Foo Baz"}, names(Match(apps, "foo", history.NewMap())))

	hist := history.NewMap()
	hist.Set("baz", 3)
	assert.Equal(t, []string{"Foo Baz", "Foo Bar"}, names(Match(apps, "foo", hist)))

	// Usage is keyed on the placeholder-free command.
	hist.Set("bar", 5)
	assert.Equal(t, []string{"Foo Bar", "Foo Baz"}, names(Match(apps, "foo", hist)))
}

func TestByUsageIsStable(t *testing.T) {
	apps := []candidate.Candidate{
		{Name: "a", Action: "a"},
		{Name: "b", Action: "b %U"},
		{Name: "c", Action: "c"},
		{Name: "d", Action: "d"},
	}
	hist := history.NewMap()
	hist.Set("b", 2)
	hist.Set("d", 2)

	assert.Equal(t, []string{"b", "d", "a", "c"}, names(ByUsage(apps, hist)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(apps), "input is not reordered")
}
