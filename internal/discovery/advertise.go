package discovery

import (
	"fmt"
	"sync"

	"github.com/grandcat/zeroconf"
	"github.com/muurk/weighguide/internal/logging"
	"go.uber.org/zap"
)

// Announcement describes what the server publishes.
type Announcement struct {
	Instance string // Human-readable instance name
	Port     int
	Version  string
	Path     string // Page path, "/" when empty
	TLS      bool   // Served over HTTPS
}

// TXT returns the TXT records for the announcement.
func (a Announcement) TXT() []string {
	path := a.Path
	if path == "" {
		path = "/"
	}
	txt := []string{AppKey + "=" + AppValue, "path=" + path}
	if a.Version != "" {
		txt = append(txt, "version="+a.Version)
	}
	if a.TLS {
		txt = append(txt, "scheme=https")
	}
	return txt
}

// Validate checks the announcement before it is published.
func (a Announcement) Validate() error {
	if a.Instance == "" {
		return fmt.Errorf("mDNS instance name is empty")
	}
	if a.Port <= 0 || a.Port > 65535 {
		return fmt.Errorf("invalid port for mDNS announcement: %d", a.Port)
	}
	return nil
}

// Publisher keeps an mDNS registration alive until Shutdown.
type Publisher struct {
	server *zeroconf.Server
	once   sync.Once
}

// Publish registers the page on all interfaces.
func Publish(a Announcement) (*Publisher, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	server, err := zeroconf.Register(a.Instance, ServiceType, ServiceDomain, a.Port, a.TXT(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Published page over mDNS",
		zap.String("instance", a.Instance),
		zap.String("service", ServiceType),
		zap.Int("port", a.Port),
		zap.Strings("addresses", hostIPs()),
	)

	return &Publisher{server: server}, nil
}

// Shutdown withdraws the registration. Safe to call more than once.
func (p *Publisher) Shutdown() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		p.server.Shutdown()
		logging.Debug("mDNS registration withdrawn")
	})
}
