// Package net publishes a drawing to read-only viewers on the local
// network: a websocket mirror, advertised over mDNS.
package net

import (
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service a mirror is advertised as.
const ServiceType = "_localsketch._tcp"

// Advertise publishes a mirror listening on port. Shut the returned server
// down to withdraw it.
func Advertise(port int, document string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"LocalSketch", "document=" + document}
	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Printf("[MDNS] Advertising %s on port %d", ServiceType, port)
	return server, nil
}

// Browse looks for mirrors for the given duration and calls found with the
// websocket URL of each one.
func Browse(timeout time.Duration, found func(url string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(MirrorURL(e.AddrV4, e.Port))
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS lookup: %w", err)
	}
	return nil
}

// MirrorURL is the websocket address of a mirror at ip:port.
func MirrorURL(ip net.IP, port int) string {
	return fmt.Sprintf("ws://%s/ws", net.JoinHostPort(ip.String(), fmt.Sprint(port)))
}
