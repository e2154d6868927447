package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Instance is a Findar site server found on the network.
type Instance struct {
	// Name is the mDNS instance name (e.g., "Findar Site")
	Name string

	// Host is the advertised host (e.g., "studio-mac.local.")
	Host string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the HTTP port the site listens on
	Port int

	// Metadata holds the TXT records; "path" and "version" are always set by Advertise
	Metadata map[string]string

	// DiscoveredAt is when the instance was seen
	DiscoveredAt time.Time
}

// String returns a human-readable description of the instance
func (i *Instance) String() string {
	return fmt.Sprintf("%s (%s) at %s", i.Name, i.Host, net.JoinHostPort(i.IP, strconv.Itoa(i.Port)))
}

// URL returns the page URL of the instance.
func (i *Instance) URL() string {
	path := i.Metadata["path"]
	if path == "" {
		path = "/"
	}
	return "http://" + net.JoinHostPort(i.IP, strconv.Itoa(i.Port)) + path
}
