// Package discovery publishes and finds weighguide pages over mDNS.
//
// "weighguide serve --advertise" publishes the page as an "_http._tcp"
// service so that tablets at the weighbridge can find it without typing an
// address. The TXT record carries "app=weighguide", which is how Scanner
// tells our pages apart from other HTTP services on the network, and
// "scheme=https" when the page is served over TLS.
//
// # Usage Example
//
//	pub, err := discovery.Publish(discovery.Announcement{
//	    Instance: "Weighing System Guide",
//	    Port:     8080,
//	})
//	if err != nil {
//	    return err
//	}
//	defer pub.Shutdown()
//
//	instances, err := discovery.QuickScan(ctx) // bounded by QuickScanTimeout
//	for _, inst := range instances {
//	    fmt.Println(inst.URL())
//	}
//
// # Network Requirements
//
// mDNS uses UDP multicast on 224.0.0.251:5353. Networks that filter
// multicast (some guest Wi-Fi, VPNs) will not see announcements.
package discovery
