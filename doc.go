// Package vbtext keeps a vector-font arcade renderer drawing text when its
// glyph face is missing or incomplete.
//
// # Overview
//
// Legacy vector games draw every character from an outline stored in a
// typeface.js style face. When the face ships without outlines, or lacks a
// character, the legacy renderer breaks. vbtext wraps the host's text service
// in a [Fallback] decorator that prefers the drawing surface's native text
// rendering and turns missing glyphs into cursor advances or no-ops.
//
// # Quick Start
//
//	env := vbtext.NewEnv()
//	vbtext.RegisterFace(env)
//
//	inst := vbtext.NewInstaller(env)
//	inst.InstallOnReady()
//
//	// Later, once the host has built its text service:
//	env.PublishService(hostText)
//
//	// The game loop draws through the active service.
//	env.Text().RenderText("SCORE 1200", 16, 20, 40)
//
// # Installation
//
// The host may construct its text service after the shim has loaded. Two
// installation paths exist:
//   - [Installer.InstallOnReady] registers a callback that runs when the host
//     calls [Env.PublishService].
//   - [Installer.Install] polls the env every RetryDelay (50ms by default)
//     until the service appears. Polling is unbounded unless
//     [WithMaxAttempts] is given.
//
// Either way the installer moves from [Uninstalled] to [Installed] exactly
// once.
//
// # Logging
//
// vbtext is silent by default. Call [SetLogger] to observe retries and
// fallback decisions.
package vbtext
