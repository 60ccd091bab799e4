package handlers

import "github.com/randytsao24/metrobot/internal/command"

// Classifier abstracts the command grammar for testability.
type Classifier interface {
	Classify(text string) command.Request
	ClassifyStrict(text string) command.Request
}

// Grammar is the Classifier backed by the command package.
type Grammar struct{}

func (Grammar) Classify(text string) command.Request { return command.Classify(text) }

func (Grammar) ClassifyStrict(text string) command.Request { return command.ClassifyStrict(text) }
