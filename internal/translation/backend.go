// Package translation renders English dictionary text in Korean.
//
// Backends talk to a concrete translation service and may fail. The Adapter wraps a
// backend and never fails: any error degrades to the original text.
package translation

import "context"

// Language codes used for every translation
const (
	SourceLang = "en"
	TargetLang = "ko"
)

// Backend translates text between two languages
type Backend interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
	Name() string
}
