package vbtext

import (
	"image/color"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	o := buildOptions(nil)
	if o.preferVectorOutlines {
		t.Error("preferVectorOutlines should default to false")
	}
	if o.fillColor != color.Color(DefaultFillColor) {
		t.Errorf("fillColor = %v, want %v", o.fillColor, DefaultFillColor)
	}
	if o.fontFamily != "monospace" {
		t.Errorf("fontFamily = %q, want monospace", o.fontFamily)
	}
	if o.baseline != BaselineAlphabetic {
		t.Errorf("baseline = %v, want alphabetic", o.baseline)
	}
	if o.retryDelay != DefaultRetryDelay {
		t.Errorf("retryDelay = %v, want %v", o.retryDelay, DefaultRetryDelay)
	}
	if o.maxAttempts != 0 {
		t.Errorf("maxAttempts = %d, want 0", o.maxAttempts)
	}
	if _, ok := o.scheduler.(timerScheduler); !ok {
		t.Errorf("scheduler = %T, want timerScheduler", o.scheduler)
	}
}

func TestOptionsIgnoreZeroValues(t *testing.T) {
	o := buildOptions([]Option{
		WithFillColor(nil),
		WithFontFamily(""),
		WithRetryDelay(-time.Second),
		WithMaxAttempts(-4),
	})
	if o.fillColor != color.Color(DefaultFillColor) {
		t.Errorf("fillColor = %v, want default", o.fillColor)
	}
	if o.fontFamily != "monospace" {
		t.Errorf("fontFamily = %q, want monospace", o.fontFamily)
	}
	if o.retryDelay != DefaultRetryDelay {
		t.Errorf("retryDelay = %v, want default", o.retryDelay)
	}
	if o.maxAttempts != 0 {
		t.Errorf("maxAttempts = %d, want 0", o.maxAttempts)
	}
}

func TestOptionsApply(t *testing.T) {
	sched := &manualScheduler{}
	o := buildOptions([]Option{
		WithPreferVectorOutlines(true),
		WithFillColor(color.White),
		WithFontFamily("serif"),
		WithBaseline(BaselineBottom),
		WithRetryDelay(time.Second),
		WithMaxAttempts(7),
		WithScheduler(sched),
	})
	if !o.preferVectorOutlines || o.fillColor != color.Color(color.White) || o.fontFamily != "serif" ||
		o.baseline != BaselineBottom || o.retryDelay != time.Second || o.maxAttempts != 7 || o.scheduler != Scheduler(sched) {
		t.Errorf("options not applied: %+v", o)
	}
}

func TestBaselineString(t *testing.T) {
	tests := []struct {
		b    Baseline
		want string
	}{
		{BaselineAlphabetic, "alphabetic"},
		{BaselineTop, "top"},
		{BaselineHanging, "hanging"},
		{BaselineMiddle, "middle"},
		{BaselineIdeographic, "ideographic"},
		{BaselineBottom, "bottom"},
		{Baseline(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Baseline(%d).String() = %q, want %q", int(tt.b), got, tt.want)
		}
	}
}

func TestFontString(t *testing.T) {
	if got := (Font{Family: "monospace", Size: 16}).String(); got != "16px monospace" {
		t.Errorf("String() = %q", got)
	}
	if got := (Font{Family: "serif", Size: 9.5}).String(); got != "9.5px serif" {
		t.Errorf("String() = %q", got)
	}
}
