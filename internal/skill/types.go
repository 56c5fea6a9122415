package skill

import "abe-voice/internal/model"

// Response is the speech envelope returned to the voice platform.
type Response struct {
	Version  string       `json:"version"`
	Response ResponseBody `json:"response"`
}

type ResponseBody struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Text returns the spoken text.
func (r Response) Text() string {
	return r.Response.OutputSpeech.Text
}

// Outcome tags which branch produced a response.
type Outcome string

const (
	OutcomeWelcome      Outcome = "welcome"
	OutcomeUpcoming     Outcome = "upcoming"
	OutcomeOnDate       Outcome = "on_date"
	OutcomeConnectivity Outcome = "connectivity_problem"
	OutcomeUnrecognized Outcome = "unrecognized_intent"
	OutcomeHelp         Outcome = "help"
	OutcomeGoodbye      Outcome = "goodbye"
	OutcomeMalformed    Outcome = "malformed_request"
	OutcomeInternal     Outcome = "internal_error"
)

// --- UseCase Inputs ---

type DispatchInput struct {
	Envelope model.Envelope
}

// --- UseCase Outputs ---

type DispatchOutput struct {
	Response Response
	Outcome  Outcome
	Kind     string // intent name, empty for launch requests
	Events   int    // number of events spoken, when a fetch happened
}
