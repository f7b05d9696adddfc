package main

// Version is set at build time via
// go build -ldflags "-X main.Version=...".
var Version = "dev"
