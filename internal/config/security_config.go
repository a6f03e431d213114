package config

import "time"

type SecurityConfig interface {
	GetTabQuotaBytes() int
	GetTabCookieName() string
	GetTabIdleTimeout() time.Duration
	GetTabSweepInterval() time.Duration
}

type Security struct {
	TabQuotaBytes int    `env:"TAB_QUOTA_BYTES" envDefault:"5242880" validate:"gt=0"` // 5 MiB, same as browser session storage
	TabCookieName string `env:"TAB_COOKIE_NAME" envDefault:"codelearn_tab" validate:"required"`

	// Tabs untouched for TabIdleTimeout are dropped by a sweep every TabSweepInterval.
	TabIdleTimeout   time.Duration `env:"TAB_IDLE_TIMEOUT" envDefault:"2h" validate:"gt=0"`
	TabSweepInterval time.Duration `env:"TAB_SWEEP_INTERVAL" envDefault:"5m" validate:"gt=0"`
}

var _ SecurityConfig = Security{}

func (s Security) GetTabQuotaBytes() int {
	return s.TabQuotaBytes
}

func (s Security) GetTabCookieName() string {
	return s.TabCookieName
}

func (s Security) GetTabIdleTimeout() time.Duration {
	return s.TabIdleTimeout
}

func (s Security) GetTabSweepInterval() time.Duration {
	return s.TabSweepInterval
}
