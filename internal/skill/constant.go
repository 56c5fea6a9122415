package skill

// Intent names defined by the skill's interaction model.
const (
	IntentWhatsHappeningNext         = "WhatsHappeningNext"
	IntentWhatsHappeningNextFeatured = "WhatsHappeningNextFeatured"
	IntentWhatsHappeningOn           = "WhatsHappeningOn"
	IntentHelp                       = "AMAZON.HelpIntent"
	IntentStop                       = "AMAZON.StopIntent"
	IntentCancel                     = "AMAZON.CancelIntent"
)

const (
	SlotDate = "date"

	// SlotDateFormat is the layout of resolved AMAZON.DATE values for a single day.
	SlotDateFormat = "2006-01-02"
)

const (
	ResponseVersion   = "1.0"
	OutputSpeechPlain = "PlainText"
)

// Speech templates
const (
	MsgWelcome        = "Welcome to the ABE, the %s calendar. How may I help you?"
	MsgConnectivity   = "There was a problem speaking to ABE. Please contact your %s."
	MsgUpcomingHeader = "I found %d events coming up on the %s calendar in the next week."
	MsgOnDateHeader   = "I found %s event%s on %s."
	MsgEventClause    = " %s, there's %s %s."
	MsgUnrecognized   = "I didn't recognize the intent %s"
	MsgMalformed      = "Sorry, I couldn't understand that request. Try asking what's happening next."
	MsgInternal       = "Sorry, something went wrong on my end. Please try again later."
	MsgHelp           = "You can ask me what's happening next, what's something awesome happening, or what's happening on a specific day on the %s calendar."
	MsgGoodbye        = "Goodbye."

	onDateFormat = "Monday, January 02"
)

// Defaults used when configuration leaves them empty.
const (
	DefaultCalendarName  = "Olin"
	DefaultContact       = "Library Overlord"
	DefaultFeaturedLabel = "featured"
	DefaultLookaheadDays = 7
)
