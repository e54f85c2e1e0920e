package view

// Effects receives the user-visible side effects of asset actions.
// Hosting shells decide how an acknowledgement is shown and how a URL is
// opened in a new viewing context.
type Effects interface {
	Acknowledge(message string)
	Open(url string)
}

type discardEffects struct{}

func (discardEffects) Acknowledge(string) {}
func (discardEffects) Open(string)        {}

// Recorder is an Effects that keeps everything it is given, in order.
type Recorder struct {
	Acknowledgements []string
	Navigations      []string
}

// Acknowledge implements Effects.
func (r *Recorder) Acknowledge(message string) {
	r.Acknowledgements = append(r.Acknowledgements, message)
}

// Open implements Effects.
func (r *Recorder) Open(url string) {
	r.Navigations = append(r.Navigations, url)
}

// Drain returns the recorded effects and clears the recorder.
func (r *Recorder) Drain() (acks []string, navigations []string) {
	acks, navigations = r.Acknowledgements, r.Navigations
	r.Acknowledgements = nil
	r.Navigations = nil
	return acks, navigations
}
