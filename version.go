package canopy

// Version is the library release identifier, surfaced by the CLI.
const Version = "0.1.0"
