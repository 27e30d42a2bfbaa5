package lobby

// SpeechFunc adapts a plain function into a SpeechNotifier.
type SpeechFunc func(text string)

func (f SpeechFunc) Speak(text string) { f(text) }
