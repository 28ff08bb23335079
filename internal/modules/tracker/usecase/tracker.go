package usecase

import (
	"context"
	"errors"
	"fmt"

	"tempo/internal/modules/tracker/domain"
	"tempo/internal/modules/tracker/dto"
	trackerin "tempo/internal/modules/tracker/port/in"
	trackerout "tempo/internal/modules/tracker/port/out"
	"tempo/internal/modules/tracker/service"
	"tempo/internal/platform/datetime"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/notify"
	"tempo/internal/platform/tx"
)

type Interactor struct {
	svc          *service.TrackerService
	store        trackerout.SessionStore
	txm          tx.Manager
	notifier     notify.Notifier
	defaultTopic string
}

func NewInteractor(svc *service.TrackerService, store trackerout.SessionStore, txm tx.Manager, notifier notify.Notifier, defaultTopic string) trackerin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Interactor{svc: svc, store: store, txm: txm, notifier: notifier, defaultTopic: defaultTopic}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	_, err := i.store.Active(ctx)
	if err == nil {
		return dto.StartOutput{}, apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.StartOutput{}, err
	}

	topic := input.Topic
	if topic == "" {
		topic = i.defaultTopic
	}
	sess, err := i.svc.Start(ctx, topic)
	if err != nil {
		return dto.StartOutput{}, err
	}
	i.notifier.Notify("tempo", fmt.Sprintf("Started: %s", sess.Topic))
	return dto.StartOutput{ID: sess.ID, Topic: sess.Topic, StartedAt: sess.Start}, nil
}

func (i *Interactor) Stop(ctx context.Context, input dto.StopInput) (dto.SessionOutput, error) {
	active, err := i.store.Active(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if input.Topic != "" && input.Topic != active.Topic {
		return dto.SessionOutput{}, fmt.Errorf("%w: active session topic is %q, not %q",
			apperrors.ErrInvalidInput, active.Topic, input.Topic)
	}
	closed, err := i.svc.Stop(ctx, active)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	i.notifier.Notify("tempo", fmt.Sprintf("Stopped: %s (%.2fh)", closed.Topic, closed.Hours()))
	return toSessionOutput(closed), nil
}

func (i *Interactor) Active(ctx context.Context) (dto.ActiveOutput, error) {
	active, err := i.store.Active(ctx)
	if err != nil {
		return dto.ActiveOutput{}, err
	}
	return dto.ActiveOutput{
		ID:        active.ID,
		Topic:     active.Topic,
		StartedAt: active.Start,
		Hours:     i.svc.Elapsed(active).Hours(),
	}, nil
}

func (i *Interactor) List(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	sessions, err := i.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toSessionOutputs(sessions), nil
}

func (i *Interactor) Closed(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.store.Closed(ctx)
	if err != nil {
		return nil, err
	}
	return toSessionOutputs(sessions), nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.SessionOutput, error) {
	if input.Topic == "" {
		return dto.SessionOutput{}, fmt.Errorf("%w: topic is required", apperrors.ErrInvalidInput)
	}
	loc := i.svc.Location()
	start, err := datetime.ParseInput(input.Start, loc)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	end, err := datetime.ParseInput(input.End, loc)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if !end.After(start) {
		return dto.SessionOutput{}, fmt.Errorf("%w: end time must be after start time", apperrors.ErrInvalidInput)
	}
	sess, err := i.store.Insert(ctx, input.Topic, start, end)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(sess), nil
}

func (i *Interactor) Edit(ctx context.Context, input dto.EditInput) error {
	found, err := i.store.Exists(ctx, input.ID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: id %d", apperrors.ErrNotFound, input.ID)
	}
	loc := i.svc.Location()
	return i.txm.Within(ctx, func(ctx context.Context) error {
		if input.Topic != nil {
			if err := i.store.UpdateTopic(ctx, input.ID, *input.Topic); err != nil {
				return err
			}
		}
		if input.Start != nil {
			start, err := datetime.ParseInput(*input.Start, loc)
			if err != nil {
				return err
			}
			if err := i.store.UpdateStart(ctx, input.ID, start); err != nil {
				return err
			}
		}
		if input.End != nil {
			end, err := datetime.ParseInput(*input.End, loc)
			if err != nil {
				return err
			}
			if err := i.store.UpdateEnd(ctx, input.ID, end); err != nil {
				return err
			}
		}
		return nil
	})
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	found, err := i.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: id %d", apperrors.ErrNotFound, id)
	}
	return nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.store.DeleteAll(ctx)
}

func toSessionOutput(sess domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:    sess.ID,
		Topic: sess.Topic,
		Start: sess.Start,
		End:   sess.End,
		Hours: sess.Hours(),
	}
}

func toSessionOutputs(sessions []domain.Session) []dto.SessionOutput {
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, toSessionOutput(sess))
	}
	return out
}
