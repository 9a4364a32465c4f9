package internal

// Version is the application version, overridden at build time with
// -ldflags "-X codeberg.org/snonux/eudicnotes/internal.Version=..."
var Version = "0.3.0"
