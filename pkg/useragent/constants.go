package useragent

// BrowserKind names the browser family an agent belongs to.
type BrowserKind string

// Browser families, one per agent.
const (
	BrowserOpera          BrowserKind = "opera"
	BrowserEdge           BrowserKind = "edge"
	BrowserIE             BrowserKind = "ie"
	BrowserSilk           BrowserKind = "silk"
	BrowserCoast          BrowserKind = "coast"
	BrowserFirefox        BrowserKind = "firefox"
	BrowserChrome         BrowserKind = "chrome"
	BrowserAndroidBrowser BrowserKind = "android_browser"
	BrowserSafari         BrowserKind = "safari"
	BrowserIosWebview     BrowserKind = "ios_webview"

	// BrowserUnknown is used when no rule matches.
	BrowserUnknown BrowserKind = "unknown"
)

// EngineKind names the rendering engine of an agent.
type EngineKind string

const (
	EngineEdgeHTML EngineKind = "edgehtml"
	EngineTrident  EngineKind = "trident"
	EnginePresto   EngineKind = "presto"
	EngineWebKit   EngineKind = "webkit"
	EngineGecko    EngineKind = "gecko"
	EngineUnknown  EngineKind = "unknown"
)

// PlatformKind names the operating system or device platform of an agent.
type PlatformKind string

const (
	PlatformWindows   PlatformKind = "windows"
	PlatformIphone    PlatformKind = "iphone"
	PlatformIpad      PlatformKind = "ipad"
	PlatformIpod      PlatformKind = "ipod"
	PlatformMacintosh PlatformKind = "macintosh"
	PlatformAndroid   PlatformKind = "android"
	PlatformChromeOS  PlatformKind = "chromeos"
	PlatformLinux     PlatformKind = "linux"
	PlatformUnknown   PlatformKind = "unknown"
)

// IsIos reports whether the platform is one of the Apple mobile devices.
func (p PlatformKind) IsIos() bool {
	return p == PlatformIphone || p == PlatformIpad || p == PlatformIpod
}

// DeviceKind represents the category of device that sent the agent.
type DeviceKind string

const (
	// DeviceBot identifies automated crawlers, bots, and spiders
	DeviceBot DeviceKind = "bot"

	// DeviceMobile identifies smartphones and feature phones
	DeviceMobile DeviceKind = "mobile"

	// DeviceTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTablet DeviceKind = "tablet"

	// DeviceDesktop identifies desktop computers and laptops
	DeviceDesktop DeviceKind = "desktop"

	// DeviceTV identifies smart TVs and streaming devices
	DeviceTV DeviceKind = "tv"

	// DeviceConsole identifies gaming consoles
	DeviceConsole DeviceKind = "console"

	// DeviceUnknown is used when the device type cannot be determined
	DeviceUnknown DeviceKind = "unknown"
)
