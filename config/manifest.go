package config

// Manifest models `basicconfig.json` (spec §6): the four core-relevant
// fields plus the per-blob MD5 digests, which this module only carries
// as an opaque passthrough — computing or verifying them is the external
// layer's job (spec §1).
type Manifest struct {
	Version   int               `json:"version"`
	NodeCount int               `json:"nodecount"`
	TDParts   int               `json:"tdparts"`
	MD5Digest map[string]string `json:"md5digest,omitempty"`

	UseCodec6    bool   `json:"useCodec6"`
	SelectSearch bool   `json:"selectsearch"`
	OptFlags     bool   `json:"optflags"`
	Inspect      bool   `json:"inspect,omitempty"`
	Debug        bool   `json:"debug,omitempty"`
	L1           uint32 `json:"l1"`
	L2           uint32 `json:"l2"`
}

// ManifestFromConfig captures the subset of c's fields basicconfig.json
// carries, alongside the build-time nodeCount/tdParts/digests the core
// trie package doesn't itself track.
func ManifestFromConfig(c *Config, nodeCount, tdParts int, md5Digest map[string]string) *Manifest {
	return &Manifest{
		Version:      1,
		NodeCount:    nodeCount,
		TDParts:      tdParts,
		MD5Digest:    md5Digest,
		UseCodec6:    c.UseCodec6,
		SelectSearch: c.SelectSearch,
		OptFlags:     c.OptFlags,
		Inspect:      c.Inspect,
		Debug:        c.Debug,
		L1:           c.L1,
		L2:           c.L2,
	}
}

// Config reconstructs the Config this manifest describes.
func (m *Manifest) Config() (*Config, error) {
	opts := []Option{WithNodeCount(m.NodeCount), WithBlockSizes(m.L1, m.L2)}
	if m.UseCodec6 {
		opts = append(opts, WithCodec6())
	}
	if m.SelectSearch {
		opts = append(opts, WithSelectSearch())
	}
	if m.OptFlags {
		opts = append(opts, WithOptFlags())
	}
	if m.Inspect {
		opts = append(opts, WithInspect())
	}
	if m.Debug {
		opts = append(opts, WithDebug())
	}

	return New(opts...)
}
