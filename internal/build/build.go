package build

import "fmt"

// Overridden at link time.
var (
	Version   = "dev"
	ShortRev  = "unknown"
	BuildTime = "unknown"
)

var LongVersion = fmt.Sprintf("%s (rev %s, built %s)", Version, ShortRev, BuildTime)
