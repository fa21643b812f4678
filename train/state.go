package train

// A State is a collection of data that can be serialized and deserialized.
// Model and optimizer states registered with a Trainer implement this
// interface.
type State interface {
	Serialize() (map[string]any, error)
	Deserialize(map[string]any) error
}
