package models

// Mode selects the dashboard color scheme.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

// Color is the accent color of the dashboard theme.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

func (c Color) Valid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorRed:
		return true
	}
	return false
}

// Container selects the page container width.
type Container string

const (
	ContainerFull  Container = "full"
	ContainerBoxed Container = "boxed"
)

func (c Container) Valid() bool {
	return c == ContainerFull || c == ContainerBoxed
}

// Sidebar selects the sidebar layout.
type Sidebar string

const (
	SidebarFull Sidebar = "full"
	SidebarMini Sidebar = "mini"
)

func (s Sidebar) Valid() bool {
	return s == SidebarFull || s == SidebarMini
}

// BorderRadius is the corner radius choice, in pixels.
type BorderRadius int

const (
	RadiusNone   BorderRadius = 0
	RadiusSmall  BorderRadius = 4
	RadiusMedium BorderRadius = 7
	RadiusLarge  BorderRadius = 12
)

func (b BorderRadius) Valid() bool {
	switch b {
	case RadiusNone, RadiusSmall, RadiusMedium, RadiusLarge:
		return true
	}
	return false
}

// Preferences holds the UI display settings. They have no relationship to
// the session or any user record.
type Preferences struct {
	Mode         Mode         `json:"mode"`
	Color        Color        `json:"color"`
	Container    Container    `json:"container"`
	Sidebar      Sidebar      `json:"sidebar"`
	BorderRadius BorderRadius `json:"border_radius"`
}

// DefaultPreferences returns the out-of-the-box display settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Mode:         ModeLight,
		Color:        ColorBlue,
		Container:    ContainerFull,
		Sidebar:      SidebarFull,
		BorderRadius: RadiusMedium,
	}
}
