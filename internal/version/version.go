package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/Rusty-VitaSDK/vita-pack-vpk/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/Rusty-VitaSDK/vita-pack-vpk/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/Rusty-VitaSDK/vita-pack-vpk/internal/version.Date={{.Date}}
)
