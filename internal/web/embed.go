package web

import "embed"

// assets holds the page templates and static files so the binary serves the
// site from any working directory.
//
//go:embed templates/*.html static/*
var assets embed.FS
