package main

import (
	"strings"

	ghostwriter "github.com/Molefas/ghost-writer"
)

// InterestsCmd is the "interests" subcommand.
type InterestsCmd struct {
	Set *string `help:"Replace the profile with this text"`
}

// Run executes the interests command. It prints the profile together with
// the keywords used for scoring.
func (c *InterestsCmd) Run(deps *Dependencies) error {
	text, err := loadOrSave(deps, deps.Interests, c.Set)
	if err != nil {
		return err
	}
	keywords := ghostwriter.ParseInterests(text)
	if keywords == nil {
		keywords = ghostwriter.Interests{}
	}
	return writeJSON(deps.Stdout, map[string]any{"profile": text, "keywords": keywords})
}

// VoiceCmd is the "voice" subcommand.
type VoiceCmd struct {
	Set *string `help:"Replace the profile with this text"`
}

// Run executes the voice command.
func (c *VoiceCmd) Run(deps *Dependencies) error {
	text, err := loadOrSave(deps, deps.Voice, c.Set)
	if err != nil {
		return err
	}
	return writeJSON(deps.Stdout, map[string]any{"profile": text, "empty": strings.TrimSpace(text) == ""})
}

func loadOrSave(deps *Dependencies, p Profile, set *string) (string, error) {
	if set != nil {
		if err := p.Save(deps.Ctx, *set); err != nil {
			return "", err
		}
	}
	return p.Load(deps.Ctx)
}
