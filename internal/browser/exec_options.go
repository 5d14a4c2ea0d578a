// File: internal/browser/exec_options.go
package browser

import (
	"strings"

	"github.com/chromedp/chromedp"

	"github.com/xkilldash9x/vantage/internal/config"
)

// execFlag is one Chromium command line switch, without the leading dashes.
// A bool value of false removes a switch set by the chromedp defaults.
type execFlag struct {
	name  string
	value interface{}
}

// execFlags derives the Chromium switches for cfg on top of chromedp's defaults.
func execFlags(cfg config.BrowserConfig) []execFlag {
	flags := []execFlag{
		// Sandboxing fails with "Permission denied" on hardened hosts and in containers.
		{"no-sandbox", true},
		{"disable-dev-shm-usage", true},
		{"headless", cfg.Headless},
		{"hide-scrollbars", true},
	}
	if cfg.DisableGPU {
		flags = append(flags, execFlag{"disable-gpu", true})
	}

	// Extra switches from config, as "--name" or "--name=value".
	for _, arg := range cfg.Args {
		arg = strings.TrimLeft(strings.TrimSpace(arg), "-")
		if arg == "" {
			continue
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if !hasValue {
			flags = append(flags, execFlag{name, true})
			continue
		}
		flags = append(flags, execFlag{name, value})
	}
	return flags
}

// AllocatorOptions returns the chromedp exec allocator options for cfg.
func AllocatorOptions(cfg config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption(nil), chromedp.DefaultExecAllocatorOptions[:]...)
	for _, f := range execFlags(cfg) {
		opts = append(opts, chromedp.Flag(f.name, f.value))
	}
	if cfg.Viewport.Width > 0 && cfg.Viewport.Height > 0 {
		opts = append(opts, chromedp.WindowSize(cfg.Viewport.Width, cfg.Viewport.Height))
	}
	return opts
}
