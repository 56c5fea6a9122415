package skill

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"abe-voice/internal/model"
)

// RenderSpeech wraps text in the platform envelope.
func RenderSpeech(text string) Response {
	return Response{
		Version: ResponseVersion,
		Response: ResponseBody{
			OutputSpeech: OutputSpeech{
				Type: OutputSpeechPlain,
				Text: text,
			},
		},
	}
}

func RenderWelcome(calendarName string) Response {
	return RenderSpeech(fmt.Sprintf(MsgWelcome, calendarName))
}

// RenderConnectivityProblem tells the user ABE could not be reached and whom to contact.
func RenderConnectivityProblem(contact string) Response {
	return RenderSpeech(fmt.Sprintf(MsgConnectivity, contact))
}

// RenderUpcoming lists the events of the next week in the given order.
func RenderUpcoming(calendarName string, events []model.Event) Response {
	var sb strings.Builder
	fmt.Fprintf(&sb, MsgUpcomingHeader, len(events), calendarName)
	writeEventClauses(&sb, events)
	return RenderSpeech(sb.String())
}

// RenderOnDate lists the events of a single day.
func RenderOnDate(date time.Time, events []model.Event) Response {
	count := "no"
	if len(events) > 0 {
		count = strconv.Itoa(len(events))
	}
	plural := "s"
	if len(events) == 1 {
		plural = ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, MsgOnDateHeader, count, plural, date.Format(onDateFormat))
	writeEventClauses(&sb, events)
	return RenderSpeech(sb.String())
}

func RenderUnrecognized(kind string) Response {
	return RenderSpeech(fmt.Sprintf(MsgUnrecognized, kind))
}

func RenderMalformedRequest() Response {
	return RenderSpeech(MsgMalformed)
}

func RenderInternalError() Response {
	return RenderSpeech(MsgInternal)
}

func RenderHelp(calendarName string) Response {
	return RenderSpeech(fmt.Sprintf(MsgHelp, calendarName))
}

func RenderGoodbye() Response {
	return RenderSpeech(MsgGoodbye)
}

func writeEventClauses(sb *strings.Builder, events []model.Event) {
	for _, ev := range events {
		where := ""
		if ev.Location != "" {
			where = "in " + ev.Location
		}
		fmt.Fprintf(sb, MsgEventClause, ev.SpeechStart(), ev.Title, where)
	}
}
