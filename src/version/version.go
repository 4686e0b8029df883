package version

// Version is the tabmarks version string. Overridden at build time via
// -ldflags "-X tabmarks/src/version.Version=...".
var Version = "0.3.0-dev"
