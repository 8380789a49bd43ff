package platform

// Package platform contains URL platform detection and OS integration glue:
// the ordered platform pattern table, filesystem helpers, bundled tool lookup
// and opening folders in the system file manager.
