package version

// Version is the release version. Overridden at build time.
var Version = "dev"

// Revision is the VCS revision. Overridden at build time.
var Revision = "unknown"
