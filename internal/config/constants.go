package config

import "time"

const AppName = "actionpad"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "actionpad.log"

// UI layout
const StatusBarHeight = 1

// Status bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = false
const AutoIndent = true

// History defaults. Zero means the undo stack is unbounded.
const DefaultMaxHistory = 0
const PreserveFuture = false
