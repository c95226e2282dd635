package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Instance is a weighguide page found on the network.
type Instance struct {
	// Name is the mDNS instance name (e.g., "Weighing System Guide")
	Name string

	// Hostname is the mDNS hostname (e.g., "scale-pc.local.")
	Hostname string

	// IP is the IPv4 address, or IPv6 when no IPv4 address was announced.
	IP string

	// Port is the HTTP port.
	Port int

	// Metadata contains the TXT record data.
	// Fields: "app=weighguide", "version=...", "path=/", "scheme=https".
	Metadata map[string]string

	// DiscoveredAt is when the instance was seen.
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the instance.
func (i *Instance) String() string {
	return fmt.Sprintf("%s (%s) at %s:%d", i.Name, i.Hostname, i.IP, i.Port)
}

// URL returns the page URL. The scheme is http unless the server
// announced scheme=https.
func (i *Instance) URL() string {
	path := i.GetMetadata("path")
	if path == "" {
		path = "/"
	}
	scheme := "http"
	if i.GetMetadata("scheme") == "https" {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(i.IP, strconv.Itoa(i.Port)) + path
}

// Version returns the announced weighguide version, if any.
func (i *Instance) Version() string {
	return i.GetMetadata("version")
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found.
func (i *Instance) GetMetadata(key string) string {
	if i.Metadata == nil {
		return ""
	}
	return i.Metadata[key]
}
