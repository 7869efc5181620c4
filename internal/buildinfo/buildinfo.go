// Package buildinfo carries version metadata stamped in with
//
//	-ldflags "-X lcdmenu/internal/buildinfo.Version=... -X lcdmenu/internal/buildinfo.Commit=..."
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version if stamped, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Full returns every stamped field, for logs.
func Full() string {
	return Version + " commit " + Commit + " built " + Date
}
