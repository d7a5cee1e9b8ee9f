package contact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yildizm/folio/internal/logger"
)

// DefaultSubmitDelay is how long SimulatedSubmitter takes.
const DefaultSubmitDelay = time.Second

// Receipt identifies a delivered message.
type Receipt struct {
	ID     uuid.UUID `json:"id"`
	SentAt time.Time `json:"sent_at"`
}

// Submitter delivers a validated form.
type Submitter interface {
	Submit(ctx context.Context, form Form) (Receipt, error)
}

// SimulatedSubmitter waits Delay and reports success. Nothing leaves the machine.
type SimulatedSubmitter struct {
	Delay time.Duration
	Now   func() time.Time
}

func (s SimulatedSubmitter) Submit(ctx context.Context, form Form) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Receipt{ID: uuid.New(), SentAt: now()}, nil
}

// Result is what the form shows after a send attempt.
type Result struct {
	OK      bool
	Message string   // success or failure banner
	Errors  []string // validation messages
	Receipt Receipt
}

// Handler validates and submits forms.
type Handler struct {
	submitter Submitter
	log       *logger.Logger
}

// NewHandler returns a handler. A nil submitter means a SimulatedSubmitter
// with DefaultSubmitDelay.
func NewHandler(submitter Submitter, log *logger.Logger) *Handler {
	if submitter == nil {
		submitter = SimulatedSubmitter{Delay: DefaultSubmitDelay}
	}
	return &Handler{submitter: submitter, log: log}
}

// Send validates form and, when valid, submits it.
func (h *Handler) Send(ctx context.Context, form Form) Result {
	if errs := form.Validate(); len(errs) > 0 {
		return Result{Errors: errs}
	}

	receipt, err := h.submitter.Submit(ctx, form)
	if err != nil {
		if h.log != nil {
			h.log.WarnWithFields("contact submit failed", []logger.Field{logger.Error(err)})
		}
		return Result{Message: MsgFailure}
	}

	if h.log != nil {
		h.log.InfoWithFields("contact message sent", []logger.Field{logger.F("id", receipt.ID.String())})
	}
	return Result{OK: true, Message: MsgSuccess, Receipt: receipt}
}
