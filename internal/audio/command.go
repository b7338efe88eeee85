package audio

import (
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tturner/scandrill/internal/language"
	"github.com/tturner/scandrill/internal/logging"
)

// Speech and sound commands tried in order when none is configured.
var (
	SpeechCommands = []string{"say", "espeak-ng", "espeak", "spd-say"}
	SoundCommands  = []string{"afplay", "paplay", "aplay"}
)

// Options selects and configures the audio backends.
type Options struct {
	// SpeechCommand and SoundCommand may contain {text}, {lang} and {file}
	// placeholders. Empty means auto-detect.
	SpeechCommand string
	SoundCommand  string
	// AlertSound is the file played on each directions tick. Empty rings
	// the terminal bell.
	AlertSound    string
	DisableSpeech bool

	Logger   *logging.Logger
	Runner   Runner
	LookPath func(string) (string, error)
	// Bell receives BEL when no alert sound is configured. Nil is stderr.
	Bell io.Writer
}

func (o Options) lookPath() func(string) (string, error) {
	if o.LookPath != nil {
		return o.LookPath
	}
	return exec.LookPath
}

func (o Options) logger() *logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Discard()
}

// CommandSpeaker speaks through an external text-to-speech program.
type CommandSpeaker struct {
	command []string
	q       *queue
}

// NewSpeaker returns a CommandSpeaker, or Nop when speech is disabled or no
// program is available.
func NewSpeaker(opts Options) Speaker {
	if opts.DisableSpeech {
		return Nop{}
	}
	command := strings.Fields(opts.SpeechCommand)
	if len(command) == 0 {
		name, ok := detect(SpeechCommands, opts.lookPath())
		if !ok {
			opts.logger().Info("No text-to-speech program found (tried %s); directions are shown only", strings.Join(SpeechCommands, ", "))
			return Nop{}
		}
		command = []string{name}
	}
	opts.logger().Verbose("Speech command: %s", command[0])
	return &CommandSpeaker{command: command, q: newQueue(opts.Runner, opts.Logger)}
}

// Speak queues text for speaking.
func (s *CommandSpeaker) Speak(text, languageCode string) {
	s.q.push(speechArgs(s.command, text, languageCode))
}

// Close waits for the current utterance.
func (s *CommandSpeaker) Close() error {
	return s.q.close()
}

// CommandPlayer plays a sound file through an external program.
type CommandPlayer struct {
	command []string
	file    string
	q       *queue
}

// NewPlayer returns a CommandPlayer for opts.AlertSound, falling back to
// the terminal bell.
func NewPlayer(opts Options) Player {
	if opts.AlertSound == "" {
		return NewBell(opts.Bell)
	}
	command := strings.Fields(opts.SoundCommand)
	if len(command) == 0 {
		name, ok := detect(SoundCommands, opts.lookPath())
		if !ok {
			opts.logger().Info("No sound player found (tried %s); using the terminal bell", strings.Join(SoundCommands, ", "))
			return NewBell(opts.Bell)
		}
		command = []string{name}
	}
	opts.logger().Verbose("Sound command: %s %s", command[0], opts.AlertSound)
	return &CommandPlayer{command: command, file: opts.AlertSound, q: newQueue(opts.Runner, opts.Logger)}
}

// Play queues one playback of the alert file.
func (p *CommandPlayer) Play() {
	p.q.push(soundArgs(p.command, p.file))
}

// Close waits for the current playback.
func (p *CommandPlayer) Close() error {
	return p.q.close()
}

func detect(candidates []string, lookPath func(string) (string, error)) (string, bool) {
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return path, true
		}
	}
	return "", false
}

// SayVoices maps a language base to the macOS voice used by say. Languages
// without an entry use the system voice.
var SayVoices = map[string]string{
	"fi": "Satu",
	"sv": "Alva",
	"de": "Anna",
	"fr": "Thomas",
	"es": "Monica",
	"it": "Alice",
	"nl": "Xander",
}

// speechArgs builds the argv for one utterance. Custom commands use
// placeholders; without {text} the text is appended. Unknown commands only
// receive the language through {lang}.
func speechArgs(command []string, text, languageCode string) []string {
	if hasPlaceholder(command) {
		return expand(command, map[string]string{"{text}": text, "{lang}": languageCode}, "{text}", text)
	}
	argv := append([]string(nil), command...)
	switch filepath.Base(command[0]) {
	case "espeak-ng", "espeak":
		argv = append(argv, "-v", language.Base(languageCode), text)
	case "spd-say":
		argv = append(argv, "-w", "-l", language.Base(languageCode), text)
	case "say":
		if voice, ok := SayVoices[language.Base(languageCode)]; ok {
			argv = append(argv, "-v", voice)
		}
		argv = append(argv, text)
	default:
		argv = append(argv, text)
	}
	return argv
}

func soundArgs(command []string, file string) []string {
	if hasPlaceholder(command) {
		return expand(command, map[string]string{"{file}": file}, "{file}", file)
	}
	argv := append([]string(nil), command...)
	if filepath.Base(command[0]) == "aplay" {
		argv = append(argv, "-q")
	}
	return append(argv, file)
}

func hasPlaceholder(command []string) bool {
	for _, arg := range command[1:] {
		if strings.Contains(arg, "{") {
			return true
		}
	}
	return false
}

func expand(command []string, values map[string]string, required, fallback string) []string {
	argv := make([]string, 0, len(command)+1)
	found := false
	for _, arg := range command {
		if strings.Contains(arg, required) {
			found = true
		}
		for k, v := range values {
			arg = strings.ReplaceAll(arg, k, v)
		}
		argv = append(argv, arg)
	}
	if !found {
		argv = append(argv, fallback)
	}
	return argv
}
