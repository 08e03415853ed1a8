package api

// TopoConfig is the on-disk topology format. Nodes and links are replayed
// in file order, so their order decides port numbering.
type TopoConfig struct {
	Name  string       `yaml:"name"`
	Nodes []NodeConfig `yaml:"nodes"`
	Links []LinkConfig `yaml:"links"`
}

type NodeConfig struct {
	Name      string   `yaml:"name"`
	Type      NodeKind `yaml:"type"`
	Dpid      string   `yaml:"dpid,omitempty"`      // hex, switches only
	Protocols []string `yaml:"protocols,omitempty"` // switches only
	Ip        string   `yaml:"ip,omitempty"`        // CIDR, hosts only
	Mac       string   `yaml:"mac,omitempty"`       // hosts only
}

type LinkConfig struct {
	SrcNode    string               `yaml:"srcNode"`
	DstNode    string               `yaml:"dstNode"`
	Properties LinkPropertiesConfig `yaml:"properties,omitempty"`
	SrcParams  map[string]string    `yaml:"srcParams,omitempty"`
	DstParams  map[string]string    `yaml:"dstParams,omitempty"`
}

type LinkPropertiesConfig struct {
	Latency *uint32  `yaml:"latency,omitempty"` // in ms
	Loss    *float32 `yaml:"loss,omitempty"`    // in percentage
	Rate    *uint64  `yaml:"rate,omitempty"`    // in mbps
}
