package version

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/appsec-training/misconfig-lab/internal/version.version=$(git describe --tags)"
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
}

func Get() Info {
	return Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
	}
}
