package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/jrgriffin/site/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("site %s (commit=%s, date=%s)", Version, Commit, Date)
}
