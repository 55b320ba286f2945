package ports

// MessageResolver resolves a message id to a text template in the closest
// supported language.
type MessageResolver interface {
	Resolve(id, language string) (string, error)
	Languages() []string
}
