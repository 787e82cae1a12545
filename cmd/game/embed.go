package main

import "embed"

// configFS holds the default game data, used unless -config is given
//
//go:embed configs
var configFS embed.FS
