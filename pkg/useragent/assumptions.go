package useragent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Assumptions pin browser or platform facts that are known ahead of time,
// for example when serving a kiosk or an embedded web view. A pinned
// category skips string scanning in Snapshot entirely: when any browser
// assumption is set, every browser flag comes from the assumptions, and
// likewise for platforms.
type Assumptions struct {
	IE           bool `env:"UA_ASSUME_IE"`
	Edge         bool `env:"UA_ASSUME_EDGE"`
	Gecko        bool `env:"UA_ASSUME_GECKO"`
	WebKit       bool `env:"UA_ASSUME_WEBKIT"`
	MobileWebKit bool `env:"UA_ASSUME_MOBILE_WEBKIT"`
	Opera        bool `env:"UA_ASSUME_OPERA"`

	// AnyVersion makes every IsVersionOrHigher check succeed.
	AnyVersion bool `env:"UA_ASSUME_ANY_VERSION"`

	Mac     bool `env:"UA_ASSUME_MAC"`
	Windows bool `env:"UA_ASSUME_WINDOWS"`
	Linux   bool `env:"UA_ASSUME_LINUX"`
	X11     bool `env:"UA_ASSUME_X11"`
	Android bool `env:"UA_ASSUME_ANDROID"`
	IPhone  bool `env:"UA_ASSUME_IPHONE"`
	IPad    bool `env:"UA_ASSUME_IPAD"`
	IPod    bool `env:"UA_ASSUME_IPOD"`
}

// BrowserKnown reports whether any browser assumption is set.
func (a Assumptions) BrowserKnown() bool {
	return a.IE || a.Edge || a.Gecko || a.MobileWebKit || a.WebKit || a.Opera
}

// PlatformKnown reports whether any platform assumption is set.
func (a Assumptions) PlatformKnown() bool {
	return a.Mac || a.Windows || a.Linux || a.X11 || a.Android ||
		a.IPhone || a.IPad || a.IPod
}

// Validate rejects assumptions naming more than one browser family or more
// than one platform. WebKit and MobileWebKit are one family, as are Linux
// and X11.
func (a Assumptions) Validate() error {
	if n := countTrue(a.IE, a.Edge, a.Gecko, a.WebKit || a.MobileWebKit, a.Opera); n > 1 {
		return fmt.Errorf("%w: %d browser families assumed", ErrConflictingAssumptions, n)
	}
	if n := countTrue(a.Mac, a.Windows, a.Linux || a.X11, a.Android, a.IPhone, a.IPad, a.IPod); n > 1 {
		return fmt.Errorf("%w: %d platforms assumed", ErrConflictingAssumptions, n)
	}
	return nil
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

var dotenvLoaded sync.Once

// LoadAssumptions reads assumptions from UA_ASSUME_* environment variables.
// A .env file in the working directory is loaded once, if present.
func LoadAssumptions() (Assumptions, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var a Assumptions
	if err := env.Parse(&a); err != nil {
		return Assumptions{}, errors.Join(ErrLoadingAssumptions, err)
	}
	if err := a.Validate(); err != nil {
		return Assumptions{}, err
	}
	return a, nil
}
