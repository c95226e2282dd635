package discovery

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type the page is published under.
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery.
	DefaultScanTimeout = 5 * time.Second

	// AppKey and AppValue mark our TXT records among other HTTP services.
	AppKey   = "app"
	AppValue = "weighguide"
)

// Scanner finds weighguide pages on the local network.
type Scanner struct {
	// Timeout is the maximum time to wait for answers.
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses until the timeout and returns every instance seen.
func (s *Scanner) Scan(ctx context.Context) ([]*Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu        sync.Mutex
		instances []*Instance
		seen      = make(map[string]bool)
		done      = make(chan struct{})
	)
	go func() {
		defer close(done)
		for entry := range entries {
			inst := parseServiceEntry(entry)
			if inst == nil {
				continue
			}
			key := fmt.Sprintf("%s:%d", inst.IP, inst.Port)
			mu.Lock()
			if !seen[key] {
				seen[key] = true
				instances = append(instances, inst)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	// The resolver closes entries once the browse context ends.
	select {
	case <-done:
	case <-time.After(time.Second):
	}

	mu.Lock()
	defer mu.Unlock()
	return instances, nil
}

// parseServiceEntry converts a zeroconf service entry to an Instance.
// Returns nil if the entry is not a weighguide page.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Instance {
	if entry == nil {
		return nil
	}

	metadata := parseTXT(entry.Text)
	if metadata[AppKey] != AppValue {
		return nil
	}

	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" || entry.Port == 0 {
		return nil
	}

	return &Instance{
		Name:         unescapeInstance(entry.Instance),
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// parseTXT splits "key=value" TXT strings; a bare key maps to "".
func parseTXT(txt []string) map[string]string {
	metadata := make(map[string]string, len(txt))
	for _, t := range txt {
		parts := strings.SplitN(t, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}
	return metadata
}

// unescapeInstance undoes the DNS escaping of spaces in instance names.
func unescapeInstance(name string) string {
	return strings.ReplaceAll(name, `\ `, " ")
}

// QuickScanTimeout bounds QuickScan.
const QuickScanTimeout = 2 * time.Second

// QuickScan performs a fast scan bounded by QuickScanTimeout.
func QuickScan(ctx context.Context) ([]*Instance, error) {
	scanner := NewScanner()
	scanner.Timeout = QuickScanTimeout
	return scanner.Scan(ctx)
}

// hostIPs lists the non-loopback unicast addresses of up interfaces.
// Used for log output only.
func hostIPs() []string {
	var out []string
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				out = append(out, ipnet.IP.String())
			}
		}
	}
	return out
}
