package icons

import "strings"

const (
	// Source icons (Nerd Font)
	Folder     = "\U000f024b"
	File       = "\U000f0214"
	Search     = "\uf002"
	Link       = "\U000f059f"
	Calculator = "\U000f00ec"
	Clipboard  = "\U000f014d"
	Image      = "\U000f021f"
	Binary     = "\U000f0976"
	Help       = "\uf059"
	App        = "\U000f003b"

	// Power icons
	Shutdown = "\uf011"
	Reboot   = "\uf0e2"
	Logout   = "\U000f0343"
	Theme    = "\U000f0594"

	// Utility Icons
	Select = "▸"
	Bullet = "•"
)

var keywordIcons = []struct {
	keywords []string
	icon     string
}{
	{[]string{"terminal", "kitty", "alacritty", "foot", "console"}, "\uf489"},
	{[]string{"firefox", "browser", "zen", "chromium", "chrome", "iron", "vivaldi", "epiphany"}, "\uf269"},
	{[]string{"code", "visual studio", "vscodium", "sublime", "atom", "jetbrains", "pycharm", "intellij", "clion"}, "\U000f0a1e"},
	{[]string{"files", "nemo", "nautilus", "thunar", "dolphin", "pcmanfm", "index"}, "\U000f024b"},
	{[]string{"discord", "vesktop", "element", "telegram", "whatsapp", "slack", "signal", "messenger"}, "\U000f066f"},
	{[]string{"spotify", "music", "amberol", "rhythmbox", "audacious", "lollypop"}, "\uf1bc"},
	{[]string{"steam", "lutris", "heroic", "bottles", "prism", "minecraft", "game"}, "\U000f04d3"},
	{[]string{"settings", "control center", "config", "tweak", "preferences"}, "\ueb51"},
	{[]string{"editor", "text", "gedit", "micro", "nvim", "vim", "leafpad", "mousepad"}, "\U000f1782"},
	{[]string{"image", "pinta", "gimp", "inkscape", "krita", "darktable", "digikam", "photos"}, "\U000f02e9"},
	{[]string{"video", "vlc", "mpv", "celluloid", "totem", "kdenlive", "obs"}, "\U000f0fce"},
	{[]string{"mail", "thunderbird", "geary", "evolution", "mailspring"}, "\U000f01ee"},
	{[]string{"calendar", "clock", "time"}, "\U000f00ed"},
	{[]string{"calc", "calculator", "galculator"}, "\U000f0a9a"},
	{[]string{"camera", "cheese", "guvcview"}, "\U000f0100"},
	{[]string{"font", "character"}, "\U000f0b36"},
	{[]string{"document", "word", "writer", "office", "libreoffice"}, "\U000f0219"},
	{[]string{"pdf", "okular", "evince", "zathura"}, "\U000f0226"},
	{[]string{"system monitor", "btop", "htop", "top", "usage"}, "\U000f154d"},
	{[]string{"password", "bitwarden", "keepass", "auth"}, "\U000f07f5"},
	{[]string{"download", "transmission", "qbittorrent", "deluge"}, "\U000f01da"},
	{[]string{"note", "obsidian", "logseq", "joplin", "keep"}, "\U000f178e"},
}

// ForApp picks a glyph for an application by keywords in its display name.
// The first matching group wins; App is returned when nothing matches.
func ForApp(name string) string {
	n := strings.ToLower(name)
	for _, group := range keywordIcons {
		for _, k := range group.keywords {
			if strings.Contains(n, k) {
				return group.icon
			}
		}
	}
	return App
}

// ForPowerClass returns the default glyph for a power option class
func ForPowerClass(class string) string {
	switch class {
	case "shutdown-btn":
		return Shutdown
	case "reboot-btn":
		return Reboot
	case "logout-btn":
		return Logout
	case "theme-btn":
		return Theme
	default:
		return Bullet
	}
}
