package discovery

import (
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantName string
		wantIP   string
		wantPort int
	}{
		{
			name: "site with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Findar Site"},
				HostName:      "studio-mac.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
				Text:          []string{"path=/", "version=1.2.0"},
			},
			wantName: "Findar Site",
			wantIP:   "192.168.4.16",
			wantPort: 8080,
		},
		{
			name: "escaped instance name",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: `Findar\ Staging`},
				HostName:      "staging.local.",
				Port:          9000,
				AddrIPv4:      []net.IP{net.ParseIP("10.0.0.5")},
			},
			wantName: "Findar Staging",
			wantIP:   "10.0.0.5",
			wantPort: 9000,
		},
		{
			name: "missing instance falls back to hostname",
			entry: &zeroconf.ServiceEntry{
				HostName: "laptop.local.",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantName: "laptop.local.",
			wantIP:   "172.16.0.1",
			wantPort: 8080,
		},
		{
			name: "IPv6 only",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Findar Site"},
				HostName:      "v6.local.",
				Port:          8080,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantName: "Findar Site",
			wantIP:   "fe80::1",
			wantPort: 8080,
		},
		{
			name: "both families prefers IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Findar Site"},
				HostName:      "dual.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6:      []net.IP{net.ParseIP("fe80::2")},
			},
			wantName: "Findar Site",
			wantIP:   "192.168.1.50",
			wantPort: 8080,
		},
		{
			name: "no address",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Findar Site"},
				HostName:      "ghost.local.",
				Port:          8080,
			},
			wantNil: true,
		},
		{
			name: "no port",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Findar Site"},
				HostName:      "noport.local.",
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name:    "nil entry",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if inst != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", inst)
				}
				return
			}

			if inst == nil {
				t.Fatal("parseServiceEntry() = nil, want instance")
			}
			if inst.Name != tt.wantName {
				t.Errorf("inst.Name = %q, want %q", inst.Name, tt.wantName)
			}
			if inst.IP != tt.wantIP {
				t.Errorf("inst.IP = %v, want %v", inst.IP, tt.wantIP)
			}
			if inst.Port != tt.wantPort {
				t.Errorf("inst.Port = %v, want %v", inst.Port, tt.wantPort)
			}
			if inst.Host != tt.entry.HostName {
				t.Errorf("inst.Host = %v, want %v", inst.Host, tt.entry.HostName)
			}
			if time.Since(inst.DiscoveredAt) > time.Second {
				t.Errorf("inst.DiscoveredAt is not recent: %v", inst.DiscoveredAt)
			}
		})
	}
}

func TestParseServiceEntry_Metadata(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "Findar Site"},
		HostName:      "studio-mac.local.",
		Port:          8080,
		AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
		Text:          []string{"path=/", "version=1.2.0", "flag", "query=a=b"},
	}

	inst := parseServiceEntry(entry)
	if inst == nil {
		t.Fatal("parseServiceEntry() = nil, want instance")
	}

	want := map[string]string{
		"path":    "/",
		"version": "1.2.0",
		"flag":    "",
		"query":   "a=b",
	}
	if !reflect.DeepEqual(inst.Metadata, want) {
		t.Errorf("inst.Metadata = %v, want %v", inst.Metadata, want)
	}
}

func TestInstanceURL(t *testing.T) {
	tests := []struct {
		name string
		inst Instance
		want string
	}{
		{"default path", Instance{IP: "192.168.1.2", Port: 8080}, "http://192.168.1.2:8080/"},
		{"custom path", Instance{IP: "192.168.1.2", Port: 80, Metadata: map[string]string{"path": "/preview"}}, "http://192.168.1.2:80/preview"},
		{"ipv6", Instance{IP: "fe80::1", Port: 8080, Metadata: map[string]string{"path": "/"}}, "http://[fe80::1]:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inst.URL(); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTXTRecords(t *testing.T) {
	got := txtRecords(map[string]string{"version": "dev", "path": "/"})
	want := []string{"path=/", "version=dev"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("txtRecords() = %v, want %v", got, want)
	}

	if got := txtRecords(nil); len(got) != 0 {
		t.Errorf("txtRecords(nil) = %v, want empty", got)
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()

	if scanner == nil {
		t.Fatal("NewScanner() = nil, want scanner")
	}
	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

func TestAdvertiserShutdownNil(t *testing.T) {
	var adv *Advertiser
	adv.Shutdown()
}
