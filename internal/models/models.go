// Package models defines shared data types
package models

import "github.com/randytsao24/metrobot/internal/command"

// ParseRequest is the body of POST /command/parse
type ParseRequest struct {
	Text   string `json:"text"`
	Strict *bool  `json:"strict,omitempty"`
}

// ParseResult is the classification of one message
type ParseResult struct {
	Success bool            `json:"success"`
	Text    string          `json:"text"`
	Match   bool            `json:"match"`
	Kind    command.Kind    `json:"kind"`
	Request command.Request `json:"request,omitempty"`
}

// NewParseResult wraps a classifier result for the API
func NewParseResult(text string, req command.Request) ParseResult {
	res := ParseResult{
		Success: true,
		Text:    text,
		Kind:    req.Kind(),
		Match:   req.Kind() != command.KindNoMatch,
	}
	if res.Match {
		res.Request = req
	}
	return res
}

// StationInfo describes a station and the spellings the parser accepts
type StationInfo struct {
	Name         string   `json:"name"`
	Key          string   `json:"key"`
	ScheduleName string   `json:"schedule_name" yaml:"schedule_name"`
	Aliases      []string `json:"aliases"`
}

// CategoryInfo describes a spending category
type CategoryInfo struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// Lexicon is the full set of recognized names
type Lexicon struct {
	Directions []string       `json:"directions"`
	Stations   []StationInfo  `json:"stations"`
	Categories []CategoryInfo `json:"categories"`
}

// NewLexicon snapshots the command package tables
func NewLexicon() Lexicon {
	lex := Lexicon{
		Directions: []string{command.West.String(), command.East.String()},
	}
	for _, s := range command.Stations() {
		lex.Stations = append(lex.Stations, StationInfo{
			Name:         s.String(),
			Key:          s.Key(),
			ScheduleName: s.ScheduleName(),
			Aliases:      s.Aliases(),
		})
	}
	for _, c := range command.Categories() {
		lex.Categories = append(lex.Categories, CategoryInfo{Name: c.String(), Alias: c.Alias()})
	}
	return lex
}
