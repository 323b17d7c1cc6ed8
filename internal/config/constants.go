package config

import "time"

// Base application details
const AppName = "wordpad"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "wordpad.log"

// Status line
const MessageTimeout = 4 * time.Second

// Export
const DefaultExportDir = "."

// Editor
const SystemClipboard = false
