// Package config decodes animation group configurations.
//
// This package handles:
//   - JSON and YAML group configurations, single object or sequence
//   - File loading with extension-based decoder selection
//   - Remote document envelopes (version fields plus groups)
//
// # Decoding
//
// Decode accepts either a single group or a list and always returns a
// slice:
//
//	specs, err := config.Decode([]byte(`{"name":"g","timelines":[{"id":"x"}]}`))
//	specs, err = config.Decode([]byte(`[{"name":"a"},{"name":"b"}]`))
//
// # Files
//
//	specs, err := config.DecodeFile("animations.yaml")
//
// DecodeSource accepts either form from one argument — inline JSON
// when it starts with '{' or '[', a file path otherwise:
//
//	specs, err := config.DecodeSource(`{"name":"g","timelines":[]}`)
//	specs, err = config.DecodeSource("animations.yaml")
//
// # Remote Documents
//
// Remotely loaded configurations arrive wrapped in an envelope; only
// the groups are consumed by resolution:
//
//	doc, err := config.DecodeDocument(raw)
//	groups, err := builder.Build(doc.Groups, nil)
package config
