package net

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_localpaint._tcp"

// Advertise announces the input endpoint on the local network.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"LocalPaint", "path=" + InputPath}

	service, err := mdns.NewMDNSService(
		host,        // instance name
		serviceType, // service type
		"",          // domain, defaults to .local
		"",          // hostname, defaults to the OS hostname
		port,
		nil, // IPs, auto-detected
		info,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks for advertised painters for timeout and reports each input
// URL to found.
func Browse(timeout time.Duration, found func(url string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(InputURL(e.AddrV4, e.Port))
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS lookup: %w", err)
	}
	return nil
}

// InputURL formats the websocket URL for an input endpoint.
func InputURL(ip net.IP, port int) string {
	return fmt.Sprintf("ws://%s%s", net.JoinHostPort(ip.String(), fmt.Sprint(port)), InputPath)
}
