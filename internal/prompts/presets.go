// Package prompts holds the built-in animation prompt presets and resolves
// user prompt input to full prompt text.
package prompts

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sceneRules is appended to every preset so each animation is generated
// under identical framing constraints. Keep edits centralized here so the
// presets stay consistent with each other.
const sceneRules = "Pure white #FFFFFF background. Flat 2D side view, perfectly orthographic. " +
	"No rotation, no zoom, no camera movement, no perspective shift. " +
	"The character stays the exact same size, scale, and position throughout every frame. " +
	"No shadows, no gradients, no environmental elements. " +
	"Pixel art style preserved exactly."

// presets maps preset names to full prompt text. Treated as immutable.
var presets = map[string]string{
	"flying": "Animate this pixel art bird character flying with a smooth wing-flapping " +
		"cycle. The bird flaps its wings up and down in a looping flight animation. " + sceneRules,
	"idle": "Animate this pixel art bird character with a visible breathing animation. " +
		"The bird's chest and belly visibly expand and contract in a slow, rhythmic " +
		"breathing motion. The body gently puffs up as it inhales, then deflates slightly " +
		"as it exhales. Feathers subtly ruffle with each breath. " + sceneRules,
	"walking": "Animate this pixel art bird character walking to the right with a cute " +
		"bouncing walk cycle. The feet alternate in a stepping motion. " + sceneRules,
	"pecking": "Animate this pixel art bird character pecking at the ground repeatedly. " +
		"The bird leans forward and taps its beak down, then returns upright, in a loop. " + sceneRules,
	"eating": "Animate this pixel art bird character eating. The bird opens and closes its beak " +
		"in a chewing motion while small crumb particles fall from its beak. The bird looks " +
		"content while munching. No actual food item shown, just the eating action with crumbs. " + sceneRules,
	"surprised": "Animate this pixel art bird character reacting to being touched. The bird first " +
		"jumps slightly with wide surprised eyes and ruffled feathers, then transitions into " +
		"a happy expression with eyes closing contentedly and a slight wiggle of joy. " +
		"The reaction goes from startled to pleased. " + sceneRules,
	"hungry": "Animate this pixel art bird character looking hungry. The bird's belly visibly " +
		"rumbles and shakes. The bird looks down at its stomach with a sad, longing expression. " +
		"Small motion lines appear around the belly to show rumbling. The bird occasionally " +
		"glances around hopefully looking for food. " + sceneRules,
	"hatching": "Animate a pixel art egg slowly cracking and hatching into this bird character. " +
		"The egg starts whole, then small cracks appear and spread across the shell. " +
		"The egg wobbles and shakes as the bird inside pushes. Pieces of shell break off " +
		"gradually until the bird emerges, looking around with fresh curious eyes. " + sceneRules,
}

var titleCaser = cases.Title(language.English)

// Source identifies where a resolved prompt came from.
type Source string

const (
	SourcePreset  Source = "preset"
	SourceFile    Source = "file"
	SourceLiteral Source = "literal"
)

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the prompt text for a preset name.
func Lookup(name string) (string, bool) {
	text, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return text, ok
}

// DisplayName renders a preset name for table output.
func DisplayName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

// Resolve maps prompt input to full prompt text. Resolution order: exact
// preset name, then a path to an existing .txt file, then the input itself
// as literal prompt text.
func Resolve(input string) (string, Source, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", "", fmt.Errorf("prompt input is empty")
	}
	if text, ok := Lookup(trimmed); ok {
		return text, SourcePreset, nil
	}
	if strings.HasSuffix(trimmed, ".txt") {
		if _, err := os.Stat(trimmed); err == nil {
			data, err := os.ReadFile(trimmed)
			if err != nil {
				return "", "", fmt.Errorf("read prompt file %s: %w", trimmed, err)
			}
			text := strings.TrimSpace(string(data))
			if text == "" {
				return "", "", fmt.Errorf("prompt file %s is empty", trimmed)
			}
			return text, SourceFile, nil
		}
	}
	return trimmed, SourceLiteral, nil
}

// Label returns the short name used in output file names: the preset name
// when input names a preset, otherwise "custom".
func Label(input string) string {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if _, ok := presets[trimmed]; ok {
		return trimmed
	}
	return "custom"
}

// Summary returns the first sentence of a prompt, for table display.
func Summary(text string) string {
	trimmed := strings.TrimSpace(text)
	if idx := strings.Index(trimmed, ". "); idx > 0 {
		return trimmed[:idx+1]
	}
	return trimmed
}
