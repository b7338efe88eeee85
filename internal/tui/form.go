package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/language"
)

// Interval and duration choices offered on the settings screen. A configured
// value outside these lists is added as an extra option.
var (
	intervalChoices = []int{2000, 3000, 5000}
	durationChoices = []string{"infinite", "1", "2", "5", "10", "15", "30"}
)

// formValues holds what the settings form edits.
type formValues struct {
	Mode       string
	Colors     []string
	Directions []string
	IntervalMs int
	Duration   string
	Language   string
}

func valuesFromConfig(cfg drill.Config) *formValues {
	v := &formValues{
		Mode:       string(cfg.Mode),
		IntervalMs: int(cfg.Interval / time.Millisecond),
		Duration:   cfg.Duration.String(),
		Language:   cfg.Language,
	}
	for _, c := range cfg.Colors {
		v.Colors = append(v.Colors, string(c))
	}
	for _, d := range cfg.Directions {
		v.Directions = append(v.Directions, string(d))
	}
	return v
}

// patch converts the form values into an engine patch.
func (v *formValues) patch() (drill.Patch, error) {
	var p drill.Patch

	mode, err := drill.ParseMode(v.Mode)
	if err != nil {
		return p, err
	}
	p.Mode = &mode

	p.Colors = []drill.Color{}
	for _, name := range v.Colors {
		c, err := drill.ParseColor(name)
		if err != nil {
			return p, err
		}
		p.Colors = append(p.Colors, c)
	}
	p.Directions = []drill.Direction{}
	for _, name := range v.Directions {
		d, err := drill.ParseDirection(name)
		if err != nil {
			return p, err
		}
		p.Directions = append(p.Directions, d)
	}

	interval := time.Duration(v.IntervalMs) * time.Millisecond
	p.Interval = &interval

	limit, err := drill.ParseDurationLimit(v.Duration)
	if err != nil {
		return p, err
	}
	p.Duration = &limit

	lang := v.Language
	p.Language = &lang
	return p, nil
}

func buildSettingsForm(v *formValues, languages language.Table, width int) *huh.Form {
	modeGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Key("mode").
			Title("Mode").
			Options(
				huh.NewOption("Colors (visual)", string(drill.ModeVisual)),
				huh.NewOption("Directions (audio)", string(drill.ModeDirections)),
			).
			Value(&v.Mode),
	)

	colorOptions := make([]huh.Option[string], 0, len(drill.Colors))
	for _, c := range drill.Colors {
		name := string(c)
		colorOptions = append(colorOptions, huh.NewOption(name, name).Selected(slices.Contains(v.Colors, name)))
	}
	colorGroup := huh.NewGroup(
		huh.NewMultiSelect[string]().
			Key("colors").
			Title("Colors").
			Description("space toggles, enter continues").
			Value(&v.Colors).
			Options(colorOptions...).
			Validate(func(selected []string) error {
				if len(selected) == 0 {
					return fmt.Errorf("select at least one color")
				}
				return nil
			}),
	).WithHideFunc(func() bool { return v.Mode != string(drill.ModeVisual) })

	languageOptions := []huh.Option[string]{huh.NewOption(language.DisplayName(language.English), language.English)}
	for _, code := range languages.Codes() {
		if code == language.English {
			continue
		}
		languageOptions = append(languageOptions, huh.NewOption(language.DisplayName(code), code))
	}
	directionOptions := make([]huh.Option[string], 0, len(drill.Directions))
	for _, d := range drill.Directions {
		name := string(d)
		directionOptions = append(directionOptions, huh.NewOption(name, name).Selected(slices.Contains(v.Directions, name)))
	}
	// The language comes first so the directions description follows it.
	directionGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Key("language").
			Title("Language").
			Options(languageOptions...).
			Value(&v.Language),
		huh.NewMultiSelect[string]().
			Key("directions").
			Title("Directions").
			DescriptionFunc(func() string { return directionWords(languages, v.Language) }, &v.Language).
			Value(&v.Directions).
			Options(directionOptions...).
			Validate(func(selected []string) error {
				if len(selected) == 0 {
					return fmt.Errorf("select at least one direction")
				}
				return nil
			}),
	).WithHideFunc(func() bool { return v.Mode != string(drill.ModeDirections) })

	intervals := slices.Clone(intervalChoices)
	if !slices.Contains(intervals, v.IntervalMs) {
		intervals = append(intervals, v.IntervalMs)
		slices.Sort(intervals)
	}
	intervalOptions := make([]huh.Option[int], 0, len(intervals))
	for _, ms := range intervals {
		intervalOptions = append(intervalOptions, huh.NewOption(formatSeconds(ms), ms))
	}

	durations := slices.Clone(durationChoices)
	if !slices.Contains(durations, v.Duration) {
		durations = append(durations, v.Duration)
	}
	durationOptions := make([]huh.Option[string], 0, len(durations))
	for _, d := range durations {
		label := "Infinite"
		if d != "infinite" {
			label = d + " min"
		}
		durationOptions = append(durationOptions, huh.NewOption(label, d))
	}

	timingGroup := huh.NewGroup(
		huh.NewSelect[int]().
			Key("interval").
			Title("Interval").
			Options(intervalOptions...).
			Value(&v.IntervalMs),
		huh.NewSelect[string]().
			Key("duration").
			Title("Duration").
			Options(durationOptions...).
			Value(&v.Duration),
	)

	return huh.NewForm(modeGroup, colorGroup, directionGroup, timingGroup).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true).
		WithWidth(width)
}

// directionWords lists how each direction is spoken in code, or the toggle
// help when the words are the keys themselves.
func directionWords(languages language.Table, code string) string {
	words := make([]string, 0, len(drill.Directions))
	translated := false
	for _, d := range drill.Directions {
		word := languages.Translate(code, string(d))
		if word != string(d) {
			translated = true
		}
		words = append(words, word)
	}
	if !translated {
		return "space toggles, enter continues"
	}
	return "Spoken as " + strings.Join(words, ", ")
}

func formatSeconds(ms int) string {
	if ms%1000 == 0 {
		return strconv.Itoa(ms/1000) + " seconds"
	}
	return strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64) + " seconds"
}
