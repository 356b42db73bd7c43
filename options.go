package vbtext

import (
	"image/color"
	"time"
)

// DefaultRetryDelay is the polling interval used by Installer.Install.
const DefaultRetryDelay = 50 * time.Millisecond

// DefaultFillColor is the retro green used for native text.
var DefaultFillColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}

// Option configures a Fallback or an Installer.
//
// Example:
//
//	inst := vbtext.NewInstaller(env,
//	    vbtext.WithPreferVectorOutlines(true),
//	    vbtext.WithRetryDelay(100*time.Millisecond),
//	)
type Option func(*options)

type options struct {
	preferVectorOutlines bool
	fillColor            color.Color
	fontFamily           string
	baseline             Baseline
	retryDelay           time.Duration
	maxAttempts          int
	scheduler            Scheduler
}

func defaultOptions() options {
	return options{
		preferVectorOutlines: false,
		fillColor:            DefaultFillColor,
		fontFamily:           "monospace",
		baseline:             BaselineAlphabetic,
		retryDelay:           DefaultRetryDelay,
		maxAttempts:          0,   // unbounded
		scheduler:            nil, // set to timerScheduler if nil
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = timerScheduler{}
	}
	return o
}

// WithPreferVectorOutlines makes RenderText delegate to the host's outline
// renderer whenever the active face has a glyph for every character.
// The default is false: text is always drawn natively.
func WithPreferVectorOutlines(prefer bool) Option {
	return func(o *options) {
		o.preferVectorOutlines = prefer
	}
}

// WithFillColor sets the color of natively drawn text.
// A nil color keeps the default.
func WithFillColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.fillColor = c
		}
	}
}

// WithFontFamily sets the generic font family of natively drawn text.
// An empty family keeps the default "monospace".
func WithFontFamily(family string) Option {
	return func(o *options) {
		if family != "" {
			o.fontFamily = family
		}
	}
}

// WithBaseline sets the text baseline of natively drawn text.
func WithBaseline(b Baseline) Option {
	return func(o *options) {
		o.baseline = b
	}
}

// WithRetryDelay sets the polling interval of Installer.Install.
// Non-positive values keep the default.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.retryDelay = d
		}
	}
}

// WithMaxAttempts bounds the number of polls Installer.Install performs.
// Zero or negative means poll until the service appears.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxAttempts = n
	}
}

// WithScheduler sets the scheduler used for polling retries.
// Use this to drive retries from the host's event loop or from tests.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}
