package codec

import "encoding/json"

// JSON encodes with encoding/json. Float64 values round-trip exactly.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name implements Codec.
func (JSON) Name() string { return "json" }

// Default is the codec used for new codebooks when none is configured.
var Default Codec = GoJSON{}
