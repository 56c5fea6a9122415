package usecase

import (
	"context"
	"fmt"

	"abe-voice/internal/model"
	"abe-voice/internal/skill"
	"abe-voice/internal/skill/repository"
)

func (uc *implUseCase) Dispatch(ctx context.Context, input skill.DispatchInput) (skill.DispatchOutput, error) {
	req, err := model.ParseIntentRequest(input.Envelope)
	if err != nil {
		uc.l.Warnf(ctx, "skill.usecase.Dispatch: %v", err)
		return malformed(""), err
	}

	if req.Launch {
		uc.l.Infof(ctx, "skill.usecase.Dispatch: launch request (application=%q)", input.Envelope.ApplicationID())
		return skill.DispatchOutput{
			Response: skill.RenderWelcome(uc.calendarName),
			Outcome:  skill.OutcomeWelcome,
		}, nil
	}

	uc.l.Infof(ctx, "skill.usecase.Dispatch: intent %s (application=%q)", req.Kind, input.Envelope.ApplicationID())

	switch req.Kind {
	case skill.IntentWhatsHappeningNext:
		return uc.upcoming(ctx, req.Kind, nil)
	case skill.IntentWhatsHappeningNextFeatured:
		return uc.upcoming(ctx, req.Kind, []string{uc.featuredLabel})
	case skill.IntentWhatsHappeningOn:
		return uc.onDate(ctx, req)
	case skill.IntentHelp:
		return skill.DispatchOutput{
			Response: skill.RenderHelp(uc.calendarName),
			Outcome:  skill.OutcomeHelp,
			Kind:     req.Kind,
		}, nil
	case skill.IntentStop, skill.IntentCancel:
		return skill.DispatchOutput{
			Response: skill.RenderGoodbye(),
			Outcome:  skill.OutcomeGoodbye,
			Kind:     req.Kind,
		}, nil
	default:
		uc.l.Warnf(ctx, "skill.usecase.Dispatch: unrecognized intent %q", req.Kind)
		return skill.DispatchOutput{
			Response: skill.RenderUnrecognized(req.Kind),
			Outcome:  skill.OutcomeUnrecognized,
			Kind:     req.Kind,
		}, nil
	}
}

// upcoming answers with the events of the lookahead window starting now.
func (uc *implUseCase) upcoming(ctx context.Context, kind string, labels []string) (skill.DispatchOutput, error) {
	from, to := uc.dateMath.Lookahead(uc.now(), uc.lookaheadDays)
	window, err := model.NewDateWindow(from, to)
	if err != nil {
		uc.l.Errorf(ctx, "skill.usecase.upcoming: %v", err)
		return internalError(kind), err
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{Window: &window, Labels: labels})
	if err != nil {
		return uc.fetchFailed(ctx, kind, err)
	}

	return skill.DispatchOutput{
		Response: skill.RenderUpcoming(uc.calendarName, events),
		Outcome:  skill.OutcomeUpcoming,
		Kind:     kind,
		Events:   len(events),
	}, nil
}

// onDate answers with the events of the single day named by the date slot.
func (uc *implUseCase) onDate(ctx context.Context, req model.IntentRequest) (skill.DispatchOutput, error) {
	slot, ok := req.Slot(skill.SlotDate)
	if !ok || slot.Value == nil {
		uc.l.Warnf(ctx, "skill.usecase.onDate: %v", skill.ErrMissingDateSlot)
		return malformed(req.Kind), skill.ErrMissingDateSlot
	}

	day, err := uc.dateMath.ParseDay(*slot.Value)
	if err != nil {
		uc.l.Warnf(ctx, "skill.usecase.onDate: %v", err)
		return malformed(req.Kind), fmt.Errorf("%w: %v", skill.ErrInvalidDateSlot, err)
	}

	start, end := uc.dateMath.DayRange(day)
	window, err := model.NewDateWindow(start, end)
	if err != nil {
		uc.l.Errorf(ctx, "skill.usecase.onDate: %v", err)
		return internalError(req.Kind), err
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{Window: &window})
	if err != nil {
		return uc.fetchFailed(ctx, req.Kind, err)
	}

	return skill.DispatchOutput{
		Response: skill.RenderOnDate(day, events),
		Outcome:  skill.OutcomeOnDate,
		Kind:     req.Kind,
		Events:   len(events),
	}, nil
}

// fetchFailed renders calendar fetch failures as a connectivity problem.
// Any other repository error is returned to the caller.
func (uc *implUseCase) fetchFailed(ctx context.Context, kind string, err error) (skill.DispatchOutput, error) {
	if !repository.IsFetchFailure(err) {
		uc.l.Errorf(ctx, "skill.usecase.fetchFailed: unexpected repository error: %v", err)
		return internalError(kind), err
	}

	uc.l.Errorf(ctx, "skill.usecase.fetchFailed: %v", err)
	return skill.DispatchOutput{
		Response: skill.RenderConnectivityProblem(uc.contact),
		Outcome:  skill.OutcomeConnectivity,
		Kind:     kind,
	}, nil
}

func internalError(kind string) skill.DispatchOutput {
	return skill.DispatchOutput{
		Response: skill.RenderInternalError(),
		Outcome:  skill.OutcomeInternal,
		Kind:     kind,
	}
}

func malformed(kind string) skill.DispatchOutput {
	return skill.DispatchOutput{
		Response: skill.RenderMalformedRequest(),
		Outcome:  skill.OutcomeMalformed,
		Kind:     kind,
	}
}
