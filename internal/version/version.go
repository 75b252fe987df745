package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/devops-template/devopstemplate/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/devops-template/devopstemplate/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/devops-template/devopstemplate/internal/version.Date={{.Date}}
)
