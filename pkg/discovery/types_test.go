package discovery

import (
	"strings"
	"testing"
)

func TestProvisionableInfoValidate(t *testing.T) {
	tests := []struct {
		name    string
		info    ProvisionableInfo
		wantErr bool
	}{
		{
			name: "valid",
			info: ProvisionableInfo{ServiceName: "PROV_4A7F02", Version: "v1", Transport: "mdns"},
		},
		{
			name:    "missing service name",
			info:    ProvisionableInfo{Version: "v1", Transport: "mdns"},
			wantErr: true,
		},
		{
			name:    "instance name too long",
			info:    ProvisionableInfo{ServiceName: strings.Repeat("P", MaxInstanceNameLen+1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeTXT(t *testing.T) {
	info := &ProvisionableInfo{
		ServiceName: "PROV_4A7F02",
		Version:     "v1",
		Transport:   "mdns",
	}

	records := EncodeTXT(info)
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0] != "ver=v1" {
		t.Errorf("records[0] = %q, want %q", records[0], "ver=v1")
	}
	if records[1] != "tt=mdns" {
		t.Errorf("records[1] = %q, want %q", records[1], "tt=mdns")
	}
}

func TestDefaultAdvertiserConfig(t *testing.T) {
	config := DefaultAdvertiserConfig()
	if config.TTL <= 0 {
		t.Error("TTL not set")
	}
	if config.Interface != "" {
		t.Errorf("Interface = %q, want all interfaces", config.Interface)
	}
}
