// Package discovery advertises and finds Findar site servers on the local
// network over mDNS.
//
// A server started with advertising enabled registers itself as a
// "_findar-site._tcp" service with TXT records describing where the page is
// served. The scan command browses for the same service type so a designer
// can open a preview running on another machine without knowing its address.
//
// # Usage Example
//
//	adv, err := discovery.Advertise("Findar Site", 8080, map[string]string{
//	    "path":    "/",
//	    "version": version.Version,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer adv.Shutdown()
//
//	instances, err := discovery.NewScanner().Scan(ctx)
//	for _, inst := range instances {
//	    fmt.Println(inst.URL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Instances must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
